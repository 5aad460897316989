package tdx

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yc-quant/share2db/model"
	"github.com/yc-quant/share2db/utils"
)

const recordSize = 32 // .day 记录固定字节大小

// DecodeDayFile 解析 .day 日线数据。
// skipRecords 为已入库的记录数，增量更新时只解析其后的新记录。
// 文件尾部不足 32 字节的部分视为未写完的记录，直接丢弃。
func DecodeDayFile(data []byte, symbol string, skipRecords int) ([]model.StockData, error) {
	count := len(data) / recordSize
	if skipRecords < 0 {
		skipRecords = 0
	}
	if skipRecords >= count {
		return nil, nil
	}

	rows := make([]model.StockData, 0, count-skipRecords)

	for i := skipRecords; i < count; i++ {
		offset := i * recordSize

		// 格式布局 (32字节):
		// 00-03: Date (uint32 YYYYMMDD)
		// 04-07: Open (uint32 / 100)
		// 08-11: High (uint32 / 100)
		// 12-15: Low  (uint32 / 100)
		// 16-19: Close (uint32 / 100)
		// 20-23: Amount (float32)
		// 24-27: Volume (uint32)
		// 28-31: Reserved

		dateRaw := binary.LittleEndian.Uint32(data[offset : offset+4])
		openRaw := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		highRaw := binary.LittleEndian.Uint32(data[offset+8 : offset+12])
		lowRaw := binary.LittleEndian.Uint32(data[offset+12 : offset+16])
		closeRaw := binary.LittleEndian.Uint32(data[offset+16 : offset+20])

		amountBits := binary.LittleEndian.Uint32(data[offset+20 : offset+24])
		amount := math.Float32frombits(amountBits)

		volRaw := binary.LittleEndian.Uint32(data[offset+24 : offset+28])

		t, err := parseDate(dateRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s record %d: %v", ErrMalformedRecord, symbol, i, err)
		}

		rows = append(rows, model.StockData{
			Symbol: symbol,
			Open:   float64(openRaw) / 100.0,
			High:   float64(highRaw) / 100.0,
			Low:    float64(lowRaw) / 100.0,
			Close:  float64(closeRaw) / 100.0,
			Amount: roundHalfUp(float64(amount)),
			Volume: int64(volRaw),
			Date:   t,
		})
	}
	return rows, nil
}

// roundHalfUp 成交额四舍五入取整，不使用银行家舍入
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

func parseDate(d uint32) (time.Time, error) {
	year := int(d / 10000)
	month := int((d % 10000) / 100)
	day := int(d % 100)
	if year < 1900 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date: %d", d)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// ConvertDayFilesToCSV 并发解析目录下的 .day 文件并汇总为单个 CSV。
// rowCounts 给出每个 symbol 已入库的记录数，nil 表示全量转换。
// 单个文件解析失败只计入错误汇总，不中断整体转换。
func ConvertDayFilesToCSV(ctx context.Context, inputDir string, validPrefixes []string, outputCSV string, rowCounts map[string]int64) (int, error) {
	files, err := collectFiles(inputDir, validPrefixes, ".day")
	if err != nil {
		return 0, fmt.Errorf("failed to traverse directory %s: %w", inputDir, err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no valid .day files found in %s", inputDir)
	}

	cw, err := utils.NewCSVWriter[model.StockData](outputCSV)
	if err != nil {
		return 0, err
	}
	defer cw.Close()

	pipeline := utils.NewPipeline[string, model.StockData]()

	result, err := pipeline.Run(
		ctx,
		files,
		func(ctx context.Context, file string) ([]model.StockData, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", file, err)
			}
			if len(data) == 0 {
				return nil, nil
			}

			symbol := strings.TrimSuffix(filepath.Base(file), ".day")
			var skip int
			if rowCounts != nil {
				skip = int(rowCounts[symbol])
			}
			return DecodeDayFile(data, symbol, skip)
		},
		func(rows []model.StockData) error {
			return cw.Write(rows)
		},
	)
	if err != nil {
		return 0, err
	}

	if result.HasErrors() {
		fmt.Printf("⚠️ 跳过 %d 个损坏的日线文件, 首个错误: %v\n", len(result.Errors), result.FirstError())
	}

	return int(result.OutputRows), nil
}

func collectFiles(root string, prefixes []string, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, suffix) {
			symbol := strings.TrimSuffix(filepath.Base(path), suffix)

			match := len(prefixes) == 0
			for _, p := range prefixes {
				if strings.HasPrefix(symbol, p) {
					match = true
					break
				}
			}

			if match {
				files = append(files, path)
			}
		}
		return nil
	})
	return files, err
}
