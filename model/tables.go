package model

import (
	"reflect"
	"strings"
	"sync"
	"time"
)

type DataType int

const (
	TypeString DataType = iota
	TypeFloat64
	TypeInt64
	TypeDate     // YYYY-MM-DD
	TypeDateTime // YYYY-MM-DD HH:MM:SS
)

type Column struct {
	Name string
	Type DataType
}

type TableMeta struct {
	TableName  string
	Columns    []Column
	OrderByKey []string
}

var (
	tableRegistry   []*TableMeta
	tableRegistryMu sync.Mutex
)

func registerTable(t *TableMeta) {
	tableRegistryMu.Lock()
	defer tableRegistryMu.Unlock()
	tableRegistry = append(tableRegistry, t)
}

// AllTables 返回当前所有已注册的表结构
func AllTables() []*TableMeta {
	tableRegistryMu.Lock()
	defer tableRegistryMu.Unlock()

	result := make([]*TableMeta, len(tableRegistry))
	copy(result, tableRegistry)
	return result
}

// SchemaFromStruct 通过反射生成 TableMeta 并自动注册
func SchemaFromStruct(tableName string, model interface{}, orderByKey []string) *TableMeta {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var cols []Column

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		colName := field.Tag.Get("col")
		if colName == "" {
			colName = strings.ToLower(field.Name)
		}

		var dType DataType
		customType := field.Tag.Get("type")
		switch {
		case customType == "date":
			dType = TypeDate
		case customType == "datetime":
			dType = TypeDateTime
		default:
			switch field.Type.Kind() {
			case reflect.String:
				dType = TypeString
			case reflect.Float64, reflect.Float32:
				dType = TypeFloat64
			case reflect.Int, reflect.Int64, reflect.Int32, reflect.Uint32:
				dType = TypeInt64
			case reflect.Struct:
				if field.Type == reflect.TypeOf(time.Time{}) {
					dType = TypeDateTime
				}
			default:
				dType = TypeString
			}
		}

		cols = append(cols, Column{Name: colName, Type: dType})
	}

	meta := &TableMeta{
		TableName:  tableName,
		Columns:    cols,
		OrderByKey: orderByKey,
	}

	registerTable(meta)

	return meta
}

// --- 结构体定义 (Schema) ---

type StockData struct {
	Symbol string    `col:"symbol" db:"symbol" parquet:"symbol,dict"`
	Open   float64   `col:"open" db:"open"   parquet:"open"`
	High   float64   `col:"high" db:"high"   parquet:"high"`
	Low    float64   `col:"low" db:"low"    parquet:"low"`
	Close  float64   `col:"close" db:"close"  parquet:"close"`
	Amount int64     `col:"amount" db:"amount" parquet:"amount"`
	Volume int64     `col:"volume" db:"volume" parquet:"volume"`
	Date   time.Time `col:"date" db:"date"   parquet:"date"      type:"date"`
}

// QfqData 前复权后的日线，Adj 为该行的累计复权因子，
// 行存在即表示该交易日已完成复权
type QfqData struct {
	Symbol string    `col:"symbol" db:"symbol" parquet:"symbol,dict"`
	Open   float64   `col:"open" db:"open"   parquet:"open"`
	High   float64   `col:"high" db:"high"   parquet:"high"`
	Low    float64   `col:"low" db:"low"    parquet:"low"`
	Close  float64   `col:"close" db:"close"  parquet:"close"`
	Amount int64     `col:"amount" db:"amount" parquet:"amount"`
	Volume int64     `col:"volume" db:"volume" parquet:"volume"`
	Date   time.Time `col:"date" db:"date"   parquet:"date"      type:"date"`
	Adj    float64   `col:"adj" db:"adj"    parquet:"adj"`
}

type Factor struct {
	Symbol    string    `col:"symbol" db:"symbol"      parquet:"symbol,dict"`
	Date      time.Time `col:"date" db:"date"        parquet:"date"         type:"date"`
	Close     float64   `col:"close" db:"close"       parquet:"close"`
	PreClose  float64   `col:"pre_close" db:"pre_close"   parquet:"pre_close"`
	QfqFactor float64   `col:"qfq_factor" db:"qfq_factor"  parquet:"qfq_factor"`
	HfqFactor float64   `col:"hfq_factor" db:"hfq_factor"  parquet:"hfq_factor"`
}

// GbbqData 股本变迁原始记录。C1~C4 的含义随类别变化：
// 除权除息时为 分红/配股价/送转股/配股 (每10股)，
// 股本类事件时为 前流通盘/前总股本/后流通盘/后总股本 (万股)
type GbbqData struct {
	Category int       `col:"category" db:"category" parquet:"category"`
	Code     string    `col:"code" db:"code"     parquet:"code,dict"`
	Date     time.Time `col:"date" db:"date"     parquet:"date"    type:"date"`
	C1       float64   `col:"c1" db:"c1"       parquet:"c1"`
	C2       float64   `col:"c2" db:"c2"       parquet:"c2"`
	C3       float64   `col:"c3" db:"c3"       parquet:"c3"`
	C4       float64   `col:"c4" db:"c4"       parquet:"c4"`
}

type StockBasic struct {
	Date          time.Time `col:"date" db:"date"           parquet:"date"   type:"date"`
	Symbol        string    `col:"symbol" db:"symbol"         parquet:"symbol,dict"`
	Close         float64   `col:"close" db:"close"          parquet:"close"`
	PreClose      float64   `col:"preclose" db:"preclose"       parquet:"preclose"`
	ChangePercent float64   `col:"change_percent" db:"change_percent" parquet:"change_percent"`
	Amplitude     float64   `col:"amplitude" db:"amplitude"      parquet:"amplitude"`
	Turnover      float64   `col:"turnover" db:"turnover"       parquet:"turnover"`
	FloatMV       float64   `col:"floatmv" db:"floatmv"        parquet:"floatmv"`
	TotalMV       float64   `col:"totalmv" db:"totalmv"        parquet:"totalmv"`
}

// CoreIndicator 基于财务快照的核心指标，金额单位为元
type CoreIndicator struct {
	Code                string    `col:"code" db:"code"                   parquet:"code,dict"`
	ReportDate          time.Time `col:"report_date" db:"report_date"            parquet:"report_date"   type:"date"`
	AnnounceDate        time.Time `col:"announce_date" db:"announce_date"          parquet:"announce_date" type:"date"`
	EPS                 float64   `col:"eps" db:"eps"                    parquet:"eps"`
	NavPS               float64   `col:"navps" db:"navps"                  parquet:"navps"`
	Revenue             float64   `col:"revenue" db:"revenue"                parquet:"revenue"`
	CoreProfit          float64   `col:"core_profit" db:"core_profit"            parquet:"core_profit"`
	CoreProfitCashRatio float64   `col:"core_profit_cash_ratio" db:"core_profit_cash_ratio" parquet:"core_profit_cash_ratio"`
	Receivables         float64   `col:"receivables" db:"receivables"            parquet:"receivables"`
	InterestDebt        float64   `col:"interest_debt" db:"interest_debt"          parquet:"interest_debt"`
	OperatingDebt       float64   `col:"operating_debt" db:"operating_debt"         parquet:"operating_debt"`
	PaidInCapital       float64   `col:"paid_in_capital" db:"paid_in_capital"        parquet:"paid_in_capital"`
	RetainedAccum       float64   `col:"retained_accum" db:"retained_accum"         parquet:"retained_accum"`
	Goodwill            float64   `col:"goodwill" db:"goodwill"               parquet:"goodwill"`
	OperatingCashFlow   float64   `col:"operating_cash_flow" db:"operating_cash_flow"    parquet:"operating_cash_flow"`
}

// --- 表结构元数据 (TableMeta) ---

var TableStocksDaily = SchemaFromStruct(
	"raw_stocks_daily",
	StockData{},
	[]string{"symbol", "date"},
)

var TableStocksQfq = SchemaFromStruct(
	"stocks_qfq",
	QfqData{},
	[]string{"symbol", "date"},
)

var TableAdjustFactor = SchemaFromStruct(
	"raw_adjust_factor",
	Factor{},
	[]string{"symbol", "date"},
)

var TableGbbq = SchemaFromStruct(
	"raw_gbbq",
	GbbqData{},
	[]string{"code", "date"},
)

var TableBasic = SchemaFromStruct(
	"stock_basics",
	StockBasic{},
	[]string{"symbol", "date"},
)

var TableFundamental = SchemaFromStruct(
	"fundamentals",
	CoreIndicator{},
	[]string{"code", "report_date"},
)
