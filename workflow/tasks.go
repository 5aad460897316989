package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yc-quant/share2db/calc"
	"github.com/yc-quant/share2db/database"
	"github.com/yc-quant/share2db/model"
	"github.com/yc-quant/share2db/tdx"
	"github.com/yc-quant/share2db/utils"
)

var (
	TaskUpdateDaily *Task
	TaskInitDaily   *Task
	TaskUpdateGBBQ  *Task
	TaskUpdateCw    *Task
	TaskCalcBasic   *Task
	TaskCalcFactor  *Task
	TaskAdjustDaily *Task
)

func init() {
	TaskUpdateDaily = &Task{
		Name:      "update_daily",
		DependsOn: []string{},
		Executor:  executeUpdateDaily,
	}

	TaskInitDaily = &Task{
		Name:      "init_daily",
		DependsOn: []string{},
		Executor:  executeInitDaily,
	}

	TaskUpdateGBBQ = &Task{
		Name:      "update_gbbq",
		DependsOn: []string{},
		Executor:  executeUpdateGBBQ,
	}

	TaskUpdateCw = &Task{
		Name:      "update_cw",
		DependsOn: []string{},
		Executor:  executeUpdateCw,
		OnError:   ErrorModeSkip,
	}

	TaskCalcBasic = &Task{
		Name:      "calc_basic",
		DependsOn: []string{"update_daily", "update_gbbq"},
		Executor:  executeCalcBasic,
	}

	TaskCalcFactor = &Task{
		Name:      "calc_factor",
		DependsOn: []string{"calc_basic"},
		Executor:  executeCalcFactor,
	}

	TaskAdjustDaily = &Task{
		Name:      "adjust_daily",
		DependsOn: []string{"update_daily", "update_gbbq"},
		Executor:  executeAdjustDaily,
	}
}

func loadActionStore(db database.DataRepository) (*calc.ActionStore, error) {
	gbbq, err := db.QueryAllGbbq()
	if err != nil {
		return nil, fmt.Errorf("failed to load gbbq records: %w", err)
	}
	return calc.NewActionStore(gbbq), nil
}

func executeUpdateDaily(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {

	latestDate, err := db.GetLatestDate(model.TableStocksDaily.TableName, "date")
	if err != nil {
		return nil, fmt.Errorf("failed to get latest date from database: %w", err)
	}
	fmt.Printf("📅 日线数据最新日期为 %s\n", latestDate.Format("2006-01-02"))

	validDates, err := prepareDayData(ctx, latestDate, args)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare day data: %w", err)
	}

	if len(validDates) == 0 {
		fmt.Println("🌲 日线数据无需更新")
		return &TaskResult{State: StateSkipped, Message: "no new daily data"}, nil
	}

	return executeDailyImport(ctx, db, args, filepath.Join(args.VipdocDir, "refmhq"))
}

func executeInitDaily(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	fmt.Printf("📦 开始处理日线目录: %s\n", args.DayFileDir)
	if err := utils.CheckDirectory(args.DayFileDir); err != nil {
		return nil, err
	}

	return executeDailyImport(ctx, db, args, args.DayFileDir)
}

func executeDailyImport(ctx context.Context, db database.DataRepository, args *TaskArgs, sourceDir string) (*TaskResult, error) {
	fmt.Println("🐢 开始转换日线数据")

	rowCounts, err := db.CountDailyRows()
	if err != nil {
		return nil, fmt.Errorf("failed to count imported rows: %w", err)
	}

	stockDailyCSV := filepath.Join(args.TempDir, "stock.csv")

	rows, err := tdx.ConvertDayFilesToCSV(ctx, sourceDir, args.ValidPrefixes, stockDailyCSV, rowCounts)
	if err != nil {
		return nil, fmt.Errorf("failed to convert day files to csv: %w", err)
	}

	if rows == 0 {
		fmt.Println("🌲 日线数据无新增")
		return &TaskResult{State: StateSkipped, Message: "no new daily rows"}, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := db.ImportDailyStocks(stockDailyCSV); err != nil {
		return nil, fmt.Errorf("failed to import stock csv: %w", err)
	}

	fmt.Println("🚀 股票数据导入成功")
	return &TaskResult{State: StateCompleted, Rows: rows, Message: "daily data imported"}, nil
}

func executeUpdateGBBQ(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	fmt.Println("🐢 开始下载股本变迁数据")

	gbbqFile, err := getGbbqFile(args.TempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to download GBBQ file: %w", err)
	}

	gbbqData, err := tdx.DecodeGbbqFile(gbbqFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decode GBBQ: %w", err)
	}

	gbbqCSV := filepath.Join(args.TempDir, "gbbq.csv")
	gbbqCw, err := utils.NewCSVWriter[model.GbbqData](gbbqCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to create GBBQ CSV writer: %w", err)
	}
	if err := gbbqCw.Write(gbbqData); err != nil {
		return nil, err
	}
	gbbqCw.Close()

	if err := db.ImportGBBQ(gbbqCSV); err != nil {
		return nil, fmt.Errorf("failed to import GBBQ csv into database: %w", err)
	}

	fmt.Println("📈 股本变迁数据导入成功")
	return &TaskResult{State: StateCompleted, Rows: len(gbbqData), Message: "gbbq data imported"}, nil
}

// executeUpdateCw 按清单的 md5 判断哪些财务包有变化，只处理变化的文件。
// 单个文件失败不中断，跳过并汇总提示。
func executeUpdateCw(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	fmt.Println("🐢 开始更新财务数据")

	if err := os.MkdirAll(args.CwDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cw directory: %w", err)
	}

	manifest, err := fetchCwManifest(args.TempDir)
	if err != nil {
		return nil, err
	}

	var indicators []model.CoreIndicator
	var reportDates []time.Time
	var failed int

	for _, entry := range manifest {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		changed, err := syncCwArchive(args.CwDir, entry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️ 跳过 %s: %v\n", entry.FileName, err)
			failed++
			continue
		}
		if !changed {
			continue
		}

		datPath := filepath.Join(args.CwDir, strings.TrimSuffix(entry.FileName, ".zip")+".dat")
		records, err := tdx.DecodeCwFile(datPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️ 解析 %s 失败: %v\n", datPath, err)
			failed++
			continue
		}

		rows := calc.CalculateCoreIndicators(records)
		indicators = append(indicators, rows...)
		if len(records) > 0 {
			reportDates = append(reportDates, records[0].ReportDate)
		}
	}

	if failed > 0 {
		fmt.Printf("⚠️ 跳过 %d 个财务文件\n", failed)
	}

	if len(indicators) == 0 {
		fmt.Println("🌲 财务数据无需更新")
		return &TaskResult{State: StateSkipped, Message: "no new fundamental data"}, nil
	}

	cwCSV := filepath.Join(args.TempDir, "fundamentals.csv")
	writer, err := utils.NewCSVWriter[model.CoreIndicator](cwCSV)
	if err != nil {
		return nil, err
	}
	if err := writer.Write(indicators); err != nil {
		return nil, err
	}
	writer.Close()

	if err := db.DeleteFundamentalsByReportDates(reportDates); err != nil {
		return nil, err
	}
	if err := db.ImportFundamentals(cwCSV); err != nil {
		return nil, fmt.Errorf("failed to import fundamentals: %w", err)
	}

	fmt.Println("📈 财务数据导入成功")
	return &TaskResult{State: StateCompleted, Rows: len(indicators), Message: "fundamental data imported"}, nil
}

func executeCalcBasic(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	fmt.Println("📟 计算股票基础行情")

	store, err := loadActionStore(db)
	if err != nil {
		return nil, err
	}

	basicCSV := filepath.Join(args.TempDir, "basics.csv")

	rowCount, err := calc.ExportStockBasicToCSV(ctx, db, store, basicCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to export basic to csv: %w", err)
	}

	if rowCount == 0 {
		fmt.Println("🌲 股票基础行情无需更新")
		return &TaskResult{State: StateSkipped, Message: "no new basic data"}, nil
	}

	if err := db.ImportBasic(basicCSV); err != nil {
		return nil, fmt.Errorf("failed to import basic data: %w", err)
	}
	fmt.Println("🔢 基础行情导入成功")
	return &TaskResult{State: StateCompleted, Rows: rowCount, Message: "basic data calculated"}, nil
}

func executeCalcFactor(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	fmt.Println("📟 计算股票复权因子")

	store, err := loadActionStore(db)
	if err != nil {
		return nil, err
	}

	factorCSV := filepath.Join(args.TempDir, "factor.csv")

	factorCount, err := calc.ExportFactorsToCSV(ctx, db, store, factorCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to export factor to csv: %w", err)
	}

	if factorCount == 0 {
		fmt.Println("🌲 复权因子无需更新")
		return &TaskResult{State: StateSkipped, Message: "no new factor data"}, nil
	}

	if err := db.ImportAdjustFactors(factorCSV); err != nil {
		return nil, fmt.Errorf("failed to append factor data: %w", err)
	}
	fmt.Printf("🔢 复权因子导入成功\n")
	return &TaskResult{State: StateCompleted, Rows: factorCount, Message: "factors calculated"}, nil
}

func executeAdjustDaily(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	fmt.Println("📟 计算前复权日线")

	store, err := loadActionStore(db)
	if err != nil {
		return nil, err
	}

	qfqCSV := filepath.Join(args.TempDir, "qfq.csv")

	rowCount, replaceSymbols, err := calc.ExportQfqToCSV(ctx, db, store, qfqCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to export qfq to csv: %w", err)
	}

	if rowCount == 0 {
		fmt.Println("🌲 前复权日线无需更新")
		return &TaskResult{State: StateSkipped, Message: "no new qfq data"}, nil
	}

	if len(replaceSymbols) > 0 {
		fmt.Printf("♻️ %d 只股票触发全量重算\n", len(replaceSymbols))
		if err := db.DeleteQfqBySymbols(replaceSymbols); err != nil {
			return nil, err
		}
	}

	if err := db.ImportQfqDaily(qfqCSV); err != nil {
		return nil, fmt.Errorf("failed to import qfq data: %w", err)
	}
	fmt.Println("🔢 前复权日线导入成功")
	return &TaskResult{State: StateCompleted, Rows: rowCount, Message: "qfq data calculated"}, nil
}

func prepareDayData(ctx context.Context, latestDate time.Time, args *TaskArgs) ([]time.Time, error) {
	var dates []time.Time

	for d := latestDate.Add(24 * time.Hour); !d.After(args.Today); d = d.Add(24 * time.Hour) {
		dates = append(dates, d)
	}

	if len(dates) == 0 {
		return nil, nil
	}

	targetPath := filepath.Join(args.VipdocDir, "refmhq")
	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	fmt.Println("🐢 开始下载日线数据")

	validDates := make([]time.Time, 0, len(dates))

	for _, date := range dates {
		select {
		case <-ctx.Done():
			return validDates, ctx.Err()
		default:
		}

		dateStr := date.Format("20060102")
		url := fmt.Sprintf("https://www.tdx.com.cn/products/data/data/g4day/%s.zip", dateStr)
		fileName := fmt.Sprintf("%sday.zip", dateStr)
		filePath := filepath.Join(targetPath, fileName)

		status, err := utils.DownloadFile(url, filePath)
		switch status {
		case 200:
			fmt.Printf("✅ 已下载 %s 的数据\n", dateStr)

			if err := utils.UnzipFile(filePath, targetPath); err != nil {
				fmt.Printf("⚠️ 解压文件 %s 失败: %v\n", filePath, err)
				continue
			}

			validDates = append(validDates, date)
		case 404:
			fmt.Printf("🟡 %s 非交易日或数据尚未更新\n", dateStr)
			continue
		default:
			if err != nil {
				return nil, fmt.Errorf("download failed: %w", err)
			}
		}
	}

	return validDates, nil
}

func getGbbqFile(cacheDir string) (string, error) {
	zipPath := filepath.Join(cacheDir, "gbbq.zip")
	gbbqURL := "http://www.tdx.com.cn/products/data/data/dbf/gbbq.zip"
	if _, err := utils.DownloadFile(gbbqURL, zipPath); err != nil {
		return "", fmt.Errorf("failed to download GBBQ zip file: %w", err)
	}

	unzipPath := filepath.Join(cacheDir, "gbbq-temp")
	if err := utils.UnzipFile(zipPath, unzipPath); err != nil {
		return "", fmt.Errorf("failed to unzip GBBQ file: %w", err)
	}

	return filepath.Join(unzipPath, "gbbq"), nil
}

type cwManifestEntry struct {
	FileName string
	Md5      string
}

const cwBaseURL = "http://down.tdx.com.cn:8001/tdxfin/"

// fetchCwManifest 下载财务文件清单，每行格式为 文件名,md5,大小
func fetchCwManifest(tempDir string) ([]cwManifestEntry, error) {
	listPath := filepath.Join(tempDir, "gpcw.txt")
	if _, err := utils.DownloadFile(cwBaseURL+"gpcw.txt", listPath); err != nil {
		return nil, fmt.Errorf("failed to download cw manifest: %w", err)
	}

	content, err := os.ReadFile(listPath)
	if err != nil {
		return nil, err
	}

	var entries []cwManifestEntry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(name, "gpcw") || !strings.HasSuffix(name, ".zip") {
			continue
		}
		entries = append(entries, cwManifestEntry{
			FileName: name,
			Md5:      strings.ToLower(strings.TrimSpace(parts[1])),
		})
	}

	return entries, nil
}

// syncCwArchive 本地文件与清单 md5 一致则跳过，否则重新下载并校验后解压
func syncCwArchive(cwDir string, entry cwManifestEntry) (bool, error) {
	zipPath := filepath.Join(cwDir, entry.FileName)

	if sum, err := utils.Md5File(zipPath); err == nil && sum == entry.Md5 {
		return false, nil
	}

	status, err := utils.DownloadFile(cwBaseURL+entry.FileName, zipPath)
	if err != nil {
		return false, err
	}
	if status == 404 {
		return false, fmt.Errorf("archive not found: %s", entry.FileName)
	}

	sum, err := utils.Md5File(zipPath)
	if err != nil {
		return false, err
	}
	if sum != entry.Md5 {
		return false, fmt.Errorf("%w: %s", utils.ErrChecksumMismatch, entry.FileName)
	}

	if err := utils.UnzipFile(zipPath, cwDir); err != nil {
		return false, fmt.Errorf("failed to unzip %s: %w", entry.FileName, err)
	}

	return true, nil
}

func GetUpdateTaskNames() []string {
	return []string{
		"update_daily",
		"update_gbbq",
		"update_cw",
		"calc_basic",
		"calc_factor",
		"adjust_daily",
	}
}

func GetRegisteredTasks() map[string]*Task {
	return map[string]*Task{
		"update_daily": TaskUpdateDaily,
		"init_daily":   TaskInitDaily,
		"update_gbbq":  TaskUpdateGBBQ,
		"update_cw":    TaskUpdateCw,
		"calc_basic":   TaskCalcBasic,
		"calc_factor":  TaskCalcFactor,
		"adjust_daily": TaskAdjustDaily,
	}
}

func GetInitTaskNames() []string {
	return []string{
		"init_daily",
	}
}
