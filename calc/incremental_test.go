package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yc-quant/share2db/model"
)

func adjusted(data []model.StockData) []model.QfqData {
	rows := make([]model.QfqData, 0, len(data))
	for _, sd := range data {
		rows = append(rows, model.QfqData{
			Symbol: sd.Symbol, Date: sd.Date,
			Open: sd.Open, High: sd.High, Low: sd.Low, Close: sd.Close,
			Amount: sd.Amount, Volume: sd.Volume, Adj: 1.0,
		})
	}
	return rows
}

func TestClassifyAdjustState(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
		bar("sz000001", day(2023, 3, 2), 10.2, 10.6, 10.1, 10.4),
	}

	assert.Equal(t, AdjustStateUnprocessed, ClassifyAdjustState(raw, nil))
	assert.Equal(t, AdjustStateFull, ClassifyAdjustState(raw, adjusted(raw)))
	assert.Equal(t, AdjustStatePartial, ClassifyAdjustState(raw, adjusted(raw[:1])))
}

func TestPlanAdjustAppendWhenNoTailEvents(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
		bar("sz000001", day(2023, 3, 2), 10.2, 10.6, 10.1, 10.4),
		bar("sz000001", day(2023, 3, 3), 10.4, 10.8, 10.3, 10.6),
	}
	adj := adjusted(raw[:1])

	// 事件在已复权范围内，补尾部即可
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 1), 5)}

	plan := PlanAdjust(raw, adj, events)
	assert.Equal(t, AdjustStatePartial, plan.State)
	assert.False(t, plan.FullRecompute)
	assert.Equal(t, day(2023, 3, 1), plan.AppendFrom)
}

func TestPlanAdjustFullRecomputeOnTailEvent(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
		bar("sz000001", day(2023, 3, 2), 10.2, 10.6, 10.1, 10.4),
	}
	adj := adjusted(raw[:1])

	// 未复权尾部出现除权除息，必须全量重算
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 2), 5)}

	plan := PlanAdjust(raw, adj, events)
	assert.Equal(t, AdjustStatePartial, plan.State)
	assert.True(t, plan.FullRecompute)
}

func TestPlanAdjustFullRecomputeOnGapEvent(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 9.9, 10.1, 9.8, 10.0), // 周三
		bar("sz000001", day(2023, 3, 6), 9.5, 9.7, 9.4, 9.6),   // 周一
	}
	adj := adjusted(raw[:1])

	// 事件落在周六，位于已复权末行和未复权首行之间的空档，
	// 一样改写已有因子，不能走补尾部
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 4), 5)}

	plan := PlanAdjust(raw, adj, events)
	assert.Equal(t, AdjustStatePartial, plan.State)
	assert.True(t, plan.FullRecompute)
}

func TestPlanAdjustUnprocessed(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
	}

	plan := PlanAdjust(raw, nil, nil)
	assert.Equal(t, AdjustStateUnprocessed, plan.State)
	assert.True(t, plan.FullRecompute)
}

func TestApplyAdjustFullStateIsNoop(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
	}
	adj := adjusted(raw)

	rows, replace, err := ApplyAdjust(raw, adj, nil)
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.False(t, replace)
}

func TestApplyAdjustAppendsTail(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
		bar("sz000001", day(2023, 3, 2), 10.2, 10.6, 10.1, 10.4),
	}
	adj := adjusted(raw[:1])

	rows, replace, err := ApplyAdjust(raw, adj, nil)
	require.NoError(t, err)
	assert.False(t, replace)
	require.Len(t, rows, 1)
	assert.Equal(t, day(2023, 3, 2), rows[0].Date)
	assert.InDelta(t, 1.0, rows[0].Adj, 1e-9)
	assert.InDelta(t, 10.4, rows[0].Close, 1e-9)
}

func TestApplyAdjustReplacesOnTailEvent(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 2, 28), 9.9, 10.1, 9.8, 10.0),
		bar("sz000001", day(2023, 3, 1), 9.55, 9.7, 9.4, 9.6),
	}
	adj := adjusted(raw[:1])
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 1), 5)}

	rows, replace, err := ApplyAdjust(raw, adj, events)
	require.NoError(t, err)
	assert.True(t, replace)
	require.Len(t, rows, 2)
	assert.InDelta(t, 0.95, rows[0].Adj, 1e-9)
	assert.InDelta(t, 9.5, rows[0].Close, 1e-9)
}

func TestApplyAdjustReplacesOnGapEvent(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 9.9, 10.1, 9.8, 10.0),
		bar("sz000001", day(2023, 3, 6), 9.5, 9.7, 9.4, 9.6),
	}
	adj := adjusted(raw[:1])
	events := []model.GbbqData{dividendEvent("000001", day(2023, 3, 4), 5)}

	rows, replace, err := ApplyAdjust(raw, adj, events)
	require.NoError(t, err)
	assert.True(t, replace)
	require.Len(t, rows, 2)
	assert.InDelta(t, 0.95, rows[0].Adj, 1e-9) // 空档事件后前段因子被改写
	assert.InDelta(t, 9.5, rows[0].Close, 1e-9)
	assert.InDelta(t, 1.0, rows[1].Adj, 1e-9)
}

func TestApplyAdjustFreshSymbolNoReplace(t *testing.T) {
	raw := []model.StockData{
		bar("sz000001", day(2023, 3, 1), 10, 10.5, 9.9, 10.2),
	}

	rows, replace, err := ApplyAdjust(raw, nil, nil)
	require.NoError(t, err)
	assert.False(t, replace) // 没有旧行可删
	require.Len(t, rows, 1)
}
