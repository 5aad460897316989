package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/yc-quant/share2db/calc"
	"github.com/yc-quant/share2db/model"
	"github.com/yc-quant/share2db/utils"
)

type ExportOptions struct {
	DBPath    string
	OutputDir string
	FromDate  string // 可选，只导出该日期之后的行情
	Period    string // 可选，week/month/year 重采样
	Format    string // csv 或 parquet，仅对重采样导出生效
}

// Export 按股票分文件导出前复权行情与复权因子，供量化框架直接读取
func Export(ctx context.Context, opts ExportOptions) error {
	if opts.FromDate != "" {
		if _, err := time.Parse("2006-01-02", opts.FromDate); err != nil {
			return fmt.Errorf("fromDate 参数格式无效: %w. 请务必使用 'YYYY-MM-DD' 格式", err)
		}
	}

	if opts.Period != "" {
		period, err := calc.ParsePeriod(opts.Period)
		if err != nil {
			return err
		}
		return exportResampled(ctx, opts, period)
	}

	return exportDaily(ctx, opts)
}

func exportDaily(ctx context.Context, opts ExportOptions) error {
	start := time.Now()

	db, err := sql.Open("duckdb", opts.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", opts.DBPath, err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	dataDir := filepath.Join(opts.OutputDir, "data")
	factorDir := filepath.Join(opts.OutputDir, "factor")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	if err := os.MkdirAll(factorDir, 0755); err != nil {
		return fmt.Errorf("failed to create factor directory %s: %w", factorDir, err)
	}

	fmt.Println("🔍 查询所有股票代码")
	symbols, err := queryAllSymbols(db)
	if err != nil {
		return fmt.Errorf("查询股票代码失败: %w", err)
	}
	fmt.Printf("✅ 找到 %d 只股票，开始导出\n", len(symbols))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())
	errChan := make(chan error, len(symbols)*2)

	for _, symbol := range symbols {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(sym string) {
			defer wg.Done()
			defer func() { <-sem }()

			dataCsvPath := filepath.Join(dataDir, fmt.Sprintf("%s.csv", sym))
			dataWhereClause := fmt.Sprintf("WHERE symbol = '%s'", sym)
			if opts.FromDate != "" {
				dataWhereClause += fmt.Sprintf(" AND date > '%s'", opts.FromDate)
			}
			dataQuery := fmt.Sprintf(
				"COPY (SELECT * FROM %s %s ORDER BY date) TO '%s' (FORMAT CSV, HEADER)",
				model.ViewDailyQFQ,
				dataWhereClause,
				dataCsvPath,
			)

			if _, err := db.Exec(dataQuery); err != nil {
				errChan <- fmt.Errorf("[data] 导出 %s 到 %s 失败: %w", sym, dataCsvPath, err)
				return
			}

			// 因子始终全量导出，复权口径依赖完整序列
			factorCsvPath := filepath.Join(factorDir, fmt.Sprintf("%s.csv", sym))
			factorQuery := fmt.Sprintf(
				"COPY (SELECT * FROM %s WHERE symbol = '%s' ORDER BY date) TO '%s' (FORMAT CSV, HEADER)",
				model.TableAdjustFactor.TableName,
				sym,
				factorCsvPath,
			)

			if _, err := db.Exec(factorQuery); err != nil {
				errChan <- fmt.Errorf("[factor] 导出 %s 到 %s 失败: %w", sym, factorCsvPath, err)
				return
			}
		}(symbol)
	}

	wg.Wait()
	close(errChan)

	var exportErrors []error
	for err := range errChan {
		exportErrors = append(exportErrors, err)
		log.Printf("导出错误: %v", err)
	}

	if len(exportErrors) > 0 {
		return fmt.Errorf("导出过程中发生 %d 个错误", len(exportErrors))
	}

	fmt.Printf("🎉 导出成功，数据位于 %s，耗时 %s\n", opts.OutputDir, time.Since(start))
	return nil
}

func exportResampled(ctx context.Context, opts ExportOptions, period calc.Period) error {
	start := time.Now()

	db, err := openRepository(opts.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	outDir := filepath.Join(opts.OutputDir, string(period))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	symbols, err := db.GetAllSymbols()
	if err != nil {
		return fmt.Errorf("查询股票代码失败: %w", err)
	}
	fmt.Printf("✅ 找到 %d 只股票，开始按 %s 重采样\n", len(symbols), period)

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())
	errChan := make(chan error, len(symbols))

	for _, symbol := range symbols {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(sym string) {
			defer wg.Done()
			defer func() { <-sem }()

			rows, err := db.QueryQfqBySymbol(sym)
			if err != nil {
				errChan <- fmt.Errorf("查询 %s 失败: %w", sym, err)
				return
			}
			if len(rows) == 0 {
				return
			}

			bars := calc.Resample(rows, period)

			if err := writePeriodBars(outDir, sym, bars, opts.Format); err != nil {
				errChan <- fmt.Errorf("写出 %s 失败: %w", sym, err)
			}
		}(symbol)
	}

	wg.Wait()
	close(errChan)

	var exportErrors []error
	for err := range errChan {
		exportErrors = append(exportErrors, err)
		log.Printf("导出错误: %v", err)
	}

	if len(exportErrors) > 0 {
		return fmt.Errorf("导出过程中发生 %d 个错误", len(exportErrors))
	}

	fmt.Printf("🎉 导出成功，数据位于 %s，耗时 %s\n", outDir, time.Since(start))
	return nil
}

func writePeriodBars(outDir, symbol string, bars []model.PeriodBar, format string) error {
	if format == "parquet" {
		path := filepath.Join(outDir, fmt.Sprintf("%s.parquet", symbol))
		writer, err := utils.NewParquetWriter[model.PeriodBar](path)
		if err != nil {
			return err
		}
		if err := writer.Write(bars); err != nil {
			writer.Close()
			return err
		}
		return writer.Close()
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s.csv", symbol))
	writer, err := utils.NewCSVWriter[model.PeriodBar](path)
	if err != nil {
		return err
	}
	if err := writer.Write(bars); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}

func queryAllSymbols(db *sql.DB) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT symbol FROM %s ORDER BY symbol", model.TableStocksDaily.TableName)

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}

	return symbols, rows.Err()
}
