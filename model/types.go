package model

import "time"

// DayfileRecord .day 文件中一条 32 字节的原始记录
type DayfileRecord struct {
	Date     uint32
	Open     uint32
	High     uint32
	Low      uint32
	Close    uint32
	Amount   float32
	Volume   uint32
	Reserved uint32
}

// XdxrData 除权除息事件的命名视图 (category = 1 的 GbbqData)
type XdxrData struct {
	Code        string
	Date        time.Time
	Fenhong     float64 // 分红 (元/10股)
	Peigujia    float64 // 配股价 (元)
	Songzhuangu float64 // 送转股 (股/10股)
	Peigu       float64 // 配股 (股/10股)
}

// Xdxr 按除权除息含义解读 C1~C4
func (g GbbqData) Xdxr() XdxrData {
	return XdxrData{
		Code:        g.Code,
		Date:        g.Date,
		Fenhong:     g.C1,
		Peigujia:    g.C2,
		Songzhuangu: g.C3,
		Peigu:       g.C4,
	}
}

// CwRecord 财务快照文件中单只股票的一条记录
type CwRecord struct {
	Code         string
	ReportDate   time.Time
	AnnounceDate time.Time
	Values       []float32
}

// PeriodBar 周/月/年线
type PeriodBar struct {
	Symbol string    `col:"symbol" parquet:"symbol,dict"`
	Open   float64   `col:"open"   parquet:"open"`
	High   float64   `col:"high"   parquet:"high"`
	Low    float64   `col:"low"    parquet:"low"`
	Close  float64   `col:"close"  parquet:"close"`
	Amount int64     `col:"amount" parquet:"amount"`
	Volume int64     `col:"volume" parquet:"volume"`
	Date   time.Time `col:"date"   parquet:"date"   type:"date"`
}
