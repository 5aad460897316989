package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yc-quant/share2db/cmd"
)

const dbPathInfo = "DuckDB 文件路径 (必填)"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rootCmd = &cobra.Command{
		Use:           "share2db",
		Short:         "Load A-share market data to DuckDB",
		SilenceErrors: true,
	}

	var dbPath, dayFileDir, output, fromDate, period, format string
	var dayDir, gbbqFile, cwFile string

	var initCmd = &cobra.Command{
		Use:   "init",
		Short: "Fully initialize daily data from local day files",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Init(ctx, dbPath, dayFileDir)
		},
	}

	var cronCmd = &cobra.Command{
		Use:   "cron",
		Short: "Update data, calc factors and adjusted daily bars",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Cron(ctx, dbPath)
		},
	}

	var convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert TDX data files to CSV without a database",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Convert(ctx, cmd.ConvertOptions{
				DayDir:    dayDir,
				GbbqFile:  gbbqFile,
				CwFile:    cwFile,
				OutputDir: output,
			})
		},
	}

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export adjusted bars and factors per symbol",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Export(ctx, cmd.ExportOptions{
				DBPath:    dbPath,
				OutputDir: output,
				FromDate:  fromDate,
				Period:    period,
				Format:    format,
			})
		},
	}

	initCmd.Flags().StringVar(&dbPath, "dbpath", "", dbPathInfo)
	initCmd.Flags().StringVar(&dayFileDir, "dayfiledir", "", ".day 文件目录路径 (必填)")
	initCmd.MarkFlagRequired("dbpath")
	initCmd.MarkFlagRequired("dayfiledir")

	cronCmd.Flags().StringVar(&dbPath, "dbpath", "", dbPathInfo)
	cronCmd.MarkFlagRequired("dbpath")

	convertCmd.Flags().StringVar(&dayDir, "daydir", "", ".day 文件目录路径")
	convertCmd.Flags().StringVar(&gbbqFile, "gbbq", "", "股本变迁文件路径")
	convertCmd.Flags().StringVar(&cwFile, "cw", "", "财务快照 .dat 文件路径")
	convertCmd.Flags().StringVar(&output, "output", "", "CSV 文件输出目录 (必填)")
	convertCmd.MarkFlagRequired("output")

	exportCmd.Flags().StringVar(&dbPath, "dbpath", "", dbPathInfo)
	exportCmd.Flags().StringVar(&output, "output", "", "文件输出目录 (必填)")
	exportCmd.Flags().StringVar(&fromDate, "fromdate", "", "导出起始日期 (不包含), 格式为 'YYYY-MM-DD'，可选参数，为空时导出所有")
	exportCmd.Flags().StringVar(&period, "period", "", "重采样周期，可选 week/month/year，为空时导出日线")
	exportCmd.Flags().StringVar(&format, "format", "csv", "重采样输出格式，csv 或 parquet")
	exportCmd.MarkFlagRequired("dbpath")
	exportCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cronCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(exportCmd)

	cobra.OnFinalize(func() {
		cleanup(cmd.DataDir)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "🛑 错误: %v\n", err)
		os.Exit(1)
	}
}

func cleanup(dataDir string) {
	os.RemoveAll(dataDir)
}
