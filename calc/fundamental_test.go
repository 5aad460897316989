package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yc-quant/share2db/model"
)

func cwValues(fields map[int]float32) []float32 {
	values := make([]float32, 120)
	for idx, v := range fields {
		values[idx] = v
	}
	return values
}

func TestCalculateCoreIndicators(t *testing.T) {
	rec := model.CwRecord{
		Code:       "000001",
		ReportDate: day(2023, 3, 31),
		Values: cwValues(map[int]float32{
			cwEPS:            1.2,
			cwNavPS:          8.5,
			cwRevenue:        1000,
			cwOperatingCost:  400,
			cwSellingExpense: 50,
			cwAdminExpense:   60,
			cwFinanceExpense: 40,
			cwOperatingCF:    90,
			cwNotesReceivable: 10,
			cwAccountsRecv:    20,
			cwLongTermRecv:    30,
			cwShortLoan:       100,
			cwCurrentNonCurr:  50,
			cwLongLoan:        200,
			cwShareCapital:    300,
			cwCapitalReserve:  150,
			cwSurplusReserve:  80,
			cwUndistributed:   120,
			cwGoodwill:        25,
		}),
	}

	indicators := CalculateCoreIndicators([]model.CwRecord{rec})
	require.Len(t, indicators, 1)
	ind := indicators[0]

	assert.Equal(t, "000001", ind.Code)
	assert.InDelta(t, 1.2, ind.EPS, 1e-6)
	assert.InDelta(t, 1000, ind.Revenue, 1e-6)
	// 核心利润 = 1000 - 400 - 50 - 60 - 40
	assert.InDelta(t, 450, ind.CoreProfit, 1e-6)
	// 获现率 = 10 * 90 / 450
	assert.InDelta(t, 2.0, ind.CoreProfitCashRatio, 1e-6)
	assert.InDelta(t, 60, ind.Receivables, 1e-6)
	assert.InDelta(t, 350, ind.InterestDebt, 1e-6)
	assert.InDelta(t, 450, ind.PaidInCapital, 1e-6)
	assert.InDelta(t, 200, ind.RetainedAccum, 1e-6)
	assert.InDelta(t, 25, ind.Goodwill, 1e-6)
}

func TestCalculateCoreIndicatorsZeroProfitGuard(t *testing.T) {
	rec := model.CwRecord{
		Code:   "000001",
		Values: cwValues(map[int]float32{cwOperatingCF: 90}),
	}

	indicators := CalculateCoreIndicators([]model.CwRecord{rec})
	require.Len(t, indicators, 1)
	assert.Zero(t, indicators[0].CoreProfitCashRatio)
}

func TestCalculateCoreIndicatorsShortValues(t *testing.T) {
	// 早期快照字段数不足，缺失字段按 0 处理
	rec := model.CwRecord{Code: "000001", Values: []float32{1.5}}

	indicators := CalculateCoreIndicators([]model.CwRecord{rec})
	require.Len(t, indicators, 1)
	assert.InDelta(t, 1.5, indicators[0].EPS, 1e-6)
	assert.Zero(t, indicators[0].Revenue)
	assert.Zero(t, indicators[0].OperatingCashFlow)
}

func TestCalculateCoreIndicatorsNaNGuard(t *testing.T) {
	values := cwValues(map[int]float32{cwRevenue: 1000})
	values[cwOperatingCost] = float32(math.NaN())

	indicators := CalculateCoreIndicators([]model.CwRecord{{Code: "000001", Values: values}})
	require.Len(t, indicators, 1)
	assert.InDelta(t, 1000-0-0-0-0, indicators[0].CoreProfit, 1e-6)
	assert.False(t, math.IsNaN(indicators[0].CoreProfit))
}
