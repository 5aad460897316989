package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yc-quant/share2db/model"
)

func bar(symbol string, date time.Time, open, high, low, close float64) model.StockData {
	return model.StockData{
		Symbol: symbol, Date: date,
		Open: open, High: high, Low: low, Close: close,
		Amount: 1000, Volume: 100,
	}
}

func dividendEvent(code string, date time.Time, fenhong float64) model.GbbqData {
	return model.GbbqData{Category: 1, Code: code, Date: date, C1: fenhong}
}

func TestCalculateFqFactorNoEvents(t *testing.T) {
	data := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
		bar("sz000001", day(2023, 3, 2), 10.2, 10.6, 10.1, 10.4),
	}

	factors, err := CalculateFqFactor(data, nil)
	require.NoError(t, err)
	require.Len(t, factors, 2)

	assert.InDelta(t, 10.2, factors[0].PreClose, 1e-9) // 首日 PreClose 取当日收盘
	assert.InDelta(t, 10.2, factors[1].PreClose, 1e-9)
	for _, f := range factors {
		assert.InDelta(t, 1.0, f.QfqFactor, 1e-9)
		assert.InDelta(t, 1.0, f.HfqFactor, 1e-9)
	}
}

func TestCalculateFqFactorDividend(t *testing.T) {
	// 每 10 股分红 5 元，除权日前收盘 10 元，参考价 (10*10-5)/10 = 9.5
	data := []model.StockData{
		bar("sz000001", day(2023, 2, 28), 9.9, 10.1, 9.8, 10.0),
		bar("sz000001", day(2023, 3, 1), 9.55, 9.7, 9.4, 9.6),
	}
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 1), 5)}

	factors, err := CalculateFqFactor(data, events)
	require.NoError(t, err)
	require.Len(t, factors, 2)

	assert.InDelta(t, 9.5, factors[1].PreClose, 1e-9)
	assert.InDelta(t, 0.95, factors[0].QfqFactor, 1e-9)
	assert.InDelta(t, 1.0, factors[1].QfqFactor, 1e-9) // 最新一天因子恒为 1

	assert.InDelta(t, 1.0, factors[0].HfqFactor, 1e-9)
	assert.InDelta(t, 10.0/9.5, factors[1].HfqFactor, 1e-9)
}

func TestCalculateFqFactorEventOnNonTradingDay(t *testing.T) {
	// 事件落在周六，合成行参与计算但不出现在结果里
	data := []model.StockData{
		bar("sz000001", day(2023, 3, 3), 9.9, 10.1, 9.8, 10.0), // 周五
		bar("sz000001", day(2023, 3, 6), 9.5, 9.7, 9.4, 9.6),   // 周一
	}
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 4), 5)}

	factors, err := CalculateFqFactor(data, events)
	require.NoError(t, err)
	require.Len(t, factors, 2)

	assert.Equal(t, day(2023, 3, 3), factors[0].Date)
	assert.Equal(t, day(2023, 3, 6), factors[1].Date)
	assert.InDelta(t, 0.95, factors[0].QfqFactor, 1e-9)
	assert.InDelta(t, 1.0, factors[1].QfqFactor, 1e-9)
}

func TestCalculateFqFactorRightsIssue(t *testing.T) {
	// 10 配 3，配股价 8 元，前收盘 10 元: (10*10 + 3*8)/(10+3) = 9.538461...
	data := []model.StockData{
		bar("sz000001", day(2023, 2, 28), 9.9, 10.1, 9.8, 10.0),
		bar("sz000001", day(2023, 3, 1), 9.5, 9.7, 9.4, 9.6),
	}
	events := []model.GbbqData{
		{Category: 1, Code: "000001", Date: day(2023, 3, 1), C2: 8, C4: 3},
	}

	factors, err := CalculateFqFactor(data, events)
	require.NoError(t, err)
	require.Len(t, factors, 2)

	expected := (10.0*10 + 3*8) / 13.0
	assert.InDelta(t, expected, factors[1].PreClose, 1e-9)
	assert.InDelta(t, expected/10.0, factors[0].QfqFactor, 1e-9)
}

func TestAdjustDailyNoEvents(t *testing.T) {
	data := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
		bar("sz000001", day(2023, 3, 2), 0, 0, 0, 0), // 坏行
	}

	rows, err := AdjustDaily(data, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 1.0, rows[0].Adj, 1e-9)
	assert.InDelta(t, 10.0, rows[0].Open, 1e-9)
}

func TestAdjustDailyDividend(t *testing.T) {
	data := []model.StockData{
		bar("sz000001", day(2023, 2, 28), 9.9, 10.1, 9.8, 10.0),
		bar("sz000001", day(2023, 3, 1), 9.55, 9.7, 9.4, 9.6),
	}
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 1), 5)}

	rows, err := AdjustDaily(data, events)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 除权日前的行按 0.95 折算并保留两位小数
	assert.InDelta(t, 9.41, rows[0].Open, 1e-9)  // 9.9 * 0.95 = 9.405
	assert.InDelta(t, 9.5, rows[0].Close, 1e-9)  // 10.0 * 0.95
	assert.InDelta(t, 0.95, rows[0].Adj, 1e-9)

	// 最新一天保持原价
	assert.InDelta(t, 9.6, rows[1].Close, 1e-9)
	assert.InDelta(t, 1.0, rows[1].Adj, 1e-9)

	// 量额不参与复权
	assert.Equal(t, int64(1000), rows[0].Amount)
	assert.Equal(t, int64(100), rows[0].Volume)
}

func TestAdjustDailyKeepsTinyAdjustedOpen(t *testing.T) {
	// 大比例分红: 参考价 (1.00*10-6)/10 = 0.4，因子 0.4。
	// 早期开盘价 0.01 折算后不足 0.005，四舍五入为 0，但原始开盘价非 0，行保留
	data := []model.StockData{
		bar("sz000001", day(2023, 2, 28), 0.01, 1.05, 0.01, 1.00),
		bar("sz000001", day(2023, 3, 1), 0.40, 0.45, 0.38, 0.40),
	}
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 1), 6)}

	rows, err := AdjustDaily(data, events)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, 0.0, rows[0].Open, 1e-9)
	assert.InDelta(t, 0.4, rows[0].Close, 1e-9)
	assert.InDelta(t, 0.4, rows[0].Adj, 1e-9)
}

func TestAdjustDailyIdempotent(t *testing.T) {
	data := []model.StockData{
		bar("sz000001", day(2023, 2, 28), 9.9, 10.1, 9.8, 10.0),
		bar("sz000001", day(2023, 3, 1), 9.55, 9.7, 9.4, 9.6),
	}
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 1), 5)}

	first, err := AdjustDaily(data, events)
	require.NoError(t, err)
	second, err := AdjustDaily(data, events)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateFqFactorEmptyInput(t *testing.T) {
	factors, err := CalculateFqFactor(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, factors)
}
