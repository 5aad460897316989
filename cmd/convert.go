package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yc-quant/share2db/calc"
	"github.com/yc-quant/share2db/model"
	"github.com/yc-quant/share2db/tdx"
	"github.com/yc-quant/share2db/utils"
)

type ConvertOptions struct {
	DayDir    string // .day 文件目录
	GbbqFile  string // 股本变迁文件
	CwFile    string // 财务快照 .dat 文件
	OutputDir string
}

// Convert 将通达信数据文件离线转换为 CSV，不依赖数据库
func Convert(ctx context.Context, opts ConvertOptions) error {
	inputs := 0
	for _, p := range []string{opts.DayDir, opts.GbbqFile, opts.CwFile} {
		if p != "" {
			inputs++
		}
	}
	if inputs != 1 {
		return errors.New("exactly one of --daydir, --gbbq, --cw is required")
	}
	if opts.OutputDir == "" {
		return errors.New("output path cannot be empty")
	}

	if err := utils.CheckOutputDir(opts.OutputDir); err != nil {
		return err
	}

	switch {
	case opts.DayDir != "":
		return convertDayDir(ctx, opts.DayDir, opts.OutputDir)
	case opts.GbbqFile != "":
		return convertGbbq(opts.GbbqFile, opts.OutputDir)
	default:
		return convertCw(opts.CwFile, opts.OutputDir)
	}
}

func convertDayDir(ctx context.Context, dayDir, outputDir string) error {
	fmt.Printf("📦 开始处理日线目录: %s\n", dayDir)
	if err := utils.CheckDirectory(dayDir); err != nil {
		return err
	}

	prefixes := []string{"sh", "sz", "bj"}
	output := filepath.Join(outputDir, "share2db_day.csv")

	fmt.Println("🐢 开始转换日线数据")
	if _, err := tdx.ConvertDayFilesToCSV(ctx, dayDir, prefixes, output, nil); err != nil {
		return fmt.Errorf("failed to convert day files: %w", err)
	}

	fmt.Printf("🔥 转换完成: %s\n", output)
	return nil
}

func convertGbbq(gbbqFile, outputDir string) error {
	fmt.Printf("📦 开始处理股本变迁文件: %s\n", gbbqFile)
	if err := utils.CheckFile(gbbqFile); err != nil {
		return err
	}

	records, err := tdx.DecodeGbbqFile(gbbqFile)
	if err != nil {
		return fmt.Errorf("failed to decode gbbq file: %w", err)
	}

	output := filepath.Join(outputDir, "share2db_gbbq.csv")
	writer, err := utils.NewCSVWriter[model.GbbqData](output)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := writer.Write(records); err != nil {
		return err
	}

	fmt.Printf("🔥 转换完成: %s (%d 条记录)\n", output, len(records))
	return nil
}

func convertCw(cwFile, outputDir string) error {
	fmt.Printf("📦 开始处理财务快照文件: %s\n", cwFile)
	if err := utils.CheckFile(cwFile); err != nil {
		return err
	}

	records, err := tdx.DecodeCwFile(cwFile)
	if err != nil {
		return fmt.Errorf("failed to decode cw file: %w", err)
	}

	indicators := calc.CalculateCoreIndicators(records)

	output := filepath.Join(outputDir, "share2db_fundamentals.csv")
	writer, err := utils.NewCSVWriter[model.CoreIndicator](output)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := writer.Write(indicators); err != nil {
		return err
	}

	fmt.Printf("🔥 转换完成: %s (%d 条记录)\n", output, len(indicators))
	return nil
}
