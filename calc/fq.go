package calc

import (
	"math"
	"sort"
	"time"

	"github.com/yc-quant/share2db/model"
)

// calendarRow 统一日历上的一行：交易日 + 落在非交易日的除权除息事件日。
// 非交易日行的收盘价由前一交易日向前填充，仅参与因子计算，不进入输出。
type calendarRow struct {
	Date        time.Time
	Symbol      string
	Close       float64
	PreClose    float64
	IsTradeDay  bool
	SrcIdx      int // 对应 stockData 的下标，合成行为 -1
	Fenhong     float64
	Peigu       float64
	Peigujia    float64
	Songzhuangu float64
}

// CalculateFqFactor 计算前复权与后复权因子。
// events 为该股票的全部股本变迁事件，内部只消费除权除息类；
// 事件为空时因子恒为 1.0 (零事件股票走快速路径)。
func CalculateFqFactor(stockData []model.StockData, events []model.GbbqData) ([]model.Factor, error) {
	xdxr := filterXdxr(events)

	if len(xdxr) == 0 {
		sort.Slice(stockData, func(i, j int) bool {
			return stockData[i].Date.Before(stockData[j].Date)
		})
		result := make([]model.Factor, 0, len(stockData))
		if len(stockData) == 0 {
			return result, nil
		}

		result = append(result, model.Factor{
			Symbol:    stockData[0].Symbol,
			Date:      stockData[0].Date,
			Close:     stockData[0].Close,
			PreClose:  stockData[0].Close, // 第一天的 PreClose 就是当天的 Close
			QfqFactor: 1.0,
			HfqFactor: 1.0,
		})

		for i := 1; i < len(stockData); i++ {
			result = append(result, model.Factor{
				Symbol:    stockData[i].Symbol,
				Date:      stockData[i].Date,
				Close:     stockData[i].Close,
				PreClose:  stockData[i-1].Close,
				QfqFactor: 1.0,
				HfqFactor: 1.0,
			})
		}
		return result, nil
	}

	combined, err := calculatePreClose(stockData, xdxr)
	if err != nil {
		return nil, err
	}
	if len(combined) == 0 {
		return []model.Factor{}, nil
	}

	qfqFactors := computeQfqFactors(combined)
	hfqFactors := computeHfqFactors(combined)

	result := make([]model.Factor, 0, len(stockData))
	for i, row := range combined {
		if row.IsTradeDay {
			result = append(result, model.Factor{
				Symbol:    row.Symbol,
				Date:      row.Date,
				Close:     row.Close,
				PreClose:  row.PreClose,
				QfqFactor: qfqFactors[i],
				HfqFactor: hfqFactors[i],
			})
		}
	}
	return result, nil
}

// AdjustDaily 对日线应用前复权：OHLC 乘以当日累计因子后保留两位小数。
// 合成的非交易日行和原始开盘价为 0 的坏行 (数据源残留) 被丢弃。
// Adj 记录该行使用的因子，增量更新据此识别已处理的行。
func AdjustDaily(stockData []model.StockData, events []model.GbbqData) ([]model.QfqData, error) {
	xdxr := filterXdxr(events)

	if len(xdxr) == 0 {
		sort.Slice(stockData, func(i, j int) bool {
			return stockData[i].Date.Before(stockData[j].Date)
		})
		result := make([]model.QfqData, 0, len(stockData))
		for _, sd := range stockData {
			if sd.Open == 0 {
				continue
			}
			result = append(result, model.QfqData{
				Symbol: sd.Symbol,
				Open:   round2(sd.Open),
				High:   round2(sd.High),
				Low:    round2(sd.Low),
				Close:  round2(sd.Close),
				Amount: sd.Amount,
				Volume: sd.Volume,
				Date:   sd.Date,
				Adj:    1.0,
			})
		}
		return result, nil
	}

	combined, err := calculatePreClose(stockData, xdxr)
	if err != nil {
		return nil, err
	}

	qfqFactors := computeQfqFactors(combined)

	result := make([]model.QfqData, 0, len(stockData))
	for i, row := range combined {
		if !row.IsTradeDay || row.SrcIdx < 0 {
			continue
		}
		sd := stockData[row.SrcIdx]
		if sd.Open == 0 {
			continue
		}
		factor := qfqFactors[i]

		result = append(result, model.QfqData{
			Symbol: sd.Symbol,
			Open:   round2(sd.Open * factor),
			High:   round2(sd.High * factor),
			Low:    round2(sd.Low * factor),
			Close:  round2(sd.Close * factor),
			Amount: sd.Amount,
			Volume: sd.Volume,
			Date:   sd.Date,
			Adj:    factor,
		})
	}
	return result, nil
}

// computeQfqFactors 前复权因子：(pre_close.shift(-1) / close) 的倒序累乘。
// 最后一行的因子恒为 1，没有后续事件的行比率缺省为 1。
func computeQfqFactors(combined []*calendarRow) []float64 {
	n := len(combined)
	if n == 0 {
		return nil
	}

	ratios := make([]float64, n)
	for i := 0; i < n-1; i++ {
		if combined[i].Close != 0 {
			ratios[i] = combined[i+1].PreClose / combined[i].Close
		} else {
			ratios[i] = 1.0
		}
	}
	ratios[n-1] = 1.0

	factors := make([]float64, n)
	acc := 1.0
	for i := n - 1; i >= 0; i-- {
		acc *= ratios[i]
		factors[i] = acc
	}
	return factors
}

// computeHfqFactors 后复权因子：(close / pre_close.shift(-1)) 的正序累乘，向下平移一位
func computeHfqFactors(combined []*calendarRow) []float64 {
	n := len(combined)
	if n == 0 {
		return nil
	}

	factors := make([]float64, n)
	factors[0] = 1.0
	acc := 1.0
	for i := 0; i < n-1; i++ {
		var ratio float64
		if combined[i+1].PreClose != 0 {
			ratio = combined[i].Close / combined[i+1].PreClose
		} else {
			ratio = 1.0
		}
		acc *= ratio
		factors[i+1] = acc
	}
	return factors
}

// calculatePreClose 构建统一日历并计算每行的除权参考价。
// 落在非交易日的事件生成合成行，收盘价向前填充；
// 参考价公式: (前收*10 - 分红 + 配股*配股价) / (10 + 配股 + 送转股)
func calculatePreClose(stockData []model.StockData, xdxr []model.XdxrData) ([]*calendarRow, error) {
	if len(stockData) == 0 {
		return []*calendarRow{}, nil
	}

	sort.Slice(stockData, func(i, j int) bool {
		return stockData[i].Date.Before(stockData[j].Date)
	})

	dataMap := make(map[string]*calendarRow)
	dateFormat := "2006-01-02"
	symbol := stockData[0].Symbol

	for i, sd := range stockData {
		dateStr := sd.Date.Format(dateFormat)
		dataMap[dateStr] = &calendarRow{
			Date: sd.Date, Symbol: sd.Symbol, Close: sd.Close, IsTradeDay: true, SrcIdx: i,
		}
	}

	for _, x := range xdxr {
		dateStr := x.Date.Format(dateFormat)
		if row, exists := dataMap[dateStr]; exists {
			row.Fenhong = x.Fenhong
			row.Peigu = x.Peigu
			row.Peigujia = x.Peigujia
			row.Songzhuangu = x.Songzhuangu
		} else {
			dataMap[dateStr] = &calendarRow{
				Date: x.Date, Symbol: symbol, IsTradeDay: false, SrcIdx: -1,
				Fenhong: x.Fenhong, Peigu: x.Peigu, Peigujia: x.Peigujia, Songzhuangu: x.Songzhuangu,
			}
		}
	}

	combined := make([]*calendarRow, 0, len(dataMap))
	for _, v := range dataMap {
		combined = append(combined, v)
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].Date.Before(combined[j].Date) })

	// 向前填充收盘价，先找到第一个有效收盘价防止填 0
	var lastClose float64
	for _, row := range combined {
		if row.IsTradeDay && row.Close > 0 {
			lastClose = row.Close
			break
		}
	}

	for _, row := range combined {
		if row.IsTradeDay && row.Close > 0 {
			lastClose = row.Close
		} else {
			row.Close = lastClose
		}
	}

	combined[0].PreClose = combined[0].Close

	for i := 1; i < len(combined); i++ {
		prevClose := combined[i-1].Close
		curr := combined[i]

		if prevClose == 0 {
			curr.PreClose = curr.Close
			continue
		}

		denominator := 10 + curr.Peigu + curr.Songzhuangu
		if denominator == 0 {
			// 事件数据异常，按价格不变处理而不是中断整个批次
			curr.PreClose = prevClose
			continue
		}

		numerator := (prevClose*10 - curr.Fenhong) + (curr.Peigu * curr.Peigujia)
		curr.PreClose = numerator / denominator
	}

	return combined, nil
}

func filterXdxr(events []model.GbbqData) []model.XdxrData {
	var result []model.XdxrData
	for _, e := range events {
		if model.EventCategory(e.Category).IsExRights() {
			result = append(result, e.Xdxr())
		}
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
