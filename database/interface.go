package database

import (
	"time"

	"github.com/yc-quant/share2db/model"
)

type DataRepository interface {
	Connect() error
	Close() error

	InitSchema() error

	ImportDailyStocks(csvPath string) error
	ImportQfqDaily(csvPath string) error
	ImportAdjustFactors(csvPath string) error
	ImportGBBQ(csvPath string) error
	ImportBasic(csvPath string) error
	ImportFundamentals(csvPath string) error

	// DeleteQfqBySymbols 清除指定股票的全部复权行，导入重算结果前调用
	DeleteQfqBySymbols(symbols []string) error
	// DeleteFundamentalsByReportDates 清除指定报告期的指标，重新导入前调用
	DeleteFundamentalsByReportDates(dates []time.Time) error

	GetLatestDate(tableName string, dateCol string) (time.Time, error)
	GetAllSymbols() ([]string, error)
	CountDailyRows() (map[string]int64, error)

	QueryStockData(symbol string, startDate, endDate *time.Time) ([]model.StockData, error)
	QueryQfqBySymbol(symbol string) ([]model.QfqData, error)
	QueryAllGbbq() ([]model.GbbqData, error)

	GetLatestBasics() ([]model.StockBasic, error)
	GetLatestBasicBySymbol(symbol string) ([]model.StockBasic, error)
}
