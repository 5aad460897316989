package tdx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/yc-quant/share2db/model"
)

const (
	cwHeaderSize    = 20 // int16 + uint32 + uint16 + 3*uint32
	cwIndexItemSize = 11 // code[6] + pad + uint32 offset
	announceDateIdx = 313
)

type cwHeader struct {
	Flag       int16
	ReportDate uint32
	Count      uint16
	Reserved1  uint32
	ChunkBytes uint32 // 每只股票的数据块字节数
	Reserved2  uint32
}

// DecodeCwFile 解析财务快照文件 (gpcw*.dat)。
// 文件头之后是 Count 条索引，每条索引记录股票代码和数据块偏移。
// 索引中的偏移是权威值，游标与其不一致时打印警告并按偏移重新定位，
// 以容忍记录之间的填充间隙。
func DecodeCwFile(path string) ([]model.CwRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cw file: %w", err)
	}

	if len(data) < cwHeaderSize {
		return nil, fmt.Errorf("%w: cw header truncated in %s", ErrMalformedRecord, path)
	}

	var header cwHeader
	if err := binary.Read(bytes.NewReader(data[:cwHeaderSize]), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	reportDate, err := fastParseDate(header.ReportDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad report date in %s: %v", ErrMalformedRecord, path, err)
	}

	count := int(header.Count)
	fieldCount := int(header.ChunkBytes / 4)
	chunkBytes := int(header.ChunkBytes)

	indexEnd := cwHeaderSize + count*cwIndexItemSize
	if len(data) < indexEnd {
		return nil, fmt.Errorf("%w: cw index truncated in %s", ErrMalformedRecord, path)
	}

	results := make([]model.CwRecord, 0, count)

	for i := 0; i < count; i++ {
		entry := data[cwHeaderSize+i*cwIndexItemSize : cwHeaderSize+(i+1)*cwIndexItemSize]

		codeBytes := entry[0:6]
		strLen := 0
		for k := 0; k < len(codeBytes); k++ {
			if codeBytes[k] == 0 {
				break
			}
			strLen++
		}
		code := string(codeBytes[:strLen])

		dataOffset := int(binary.LittleEndian.Uint32(entry[7:11]))

		// 连续布局下的期望位置，不一致说明存在填充，以索引为准
		expected := indexEnd + i*chunkBytes
		if dataOffset != expected {
			fmt.Fprintf(os.Stderr, "⚠️ %v: %s at record %d, expected %d got %d, reseeking\n",
				ErrInconsistentOffset, code, i, expected, dataOffset)
		}

		if dataOffset+chunkBytes > len(data) {
			return nil, fmt.Errorf("%w: cw payload truncated for %s in %s", ErrMalformedRecord, code, path)
		}

		values := make([]float32, fieldCount)
		if err := binary.Read(bytes.NewReader(data[dataOffset:dataOffset+chunkBytes]), binary.LittleEndian, &values); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}

		var announceDate time.Time
		if fieldCount > announceDateIdx {
			announceDate = parseAnnounceDate(uint32(values[announceDateIdx]))
		}

		results = append(results, model.CwRecord{
			Code:         code,
			ReportDate:   reportDate,
			AnnounceDate: announceDate,
			Values:       values,
		})
	}

	return results, nil
}

// parseAnnounceDate 公告日期为 yymmdd 格式，无效值返回零值时间
func parseAnnounceDate(v uint32) time.Time {
	if v == 0 {
		return time.Time{}
	}
	yy := int(v / 10000)
	m := int((v % 10000) / 100)
	d := int(v % 100)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}
	}
	year := 1900 + yy
	if yy < 70 {
		year = 2000 + yy
	}
	return time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.Local)
}
