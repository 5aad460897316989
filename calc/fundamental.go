package calc

import (
	"math"

	"github.com/yc-quant/share2db/model"
)

// 财务快照的字段下标 (gpcw 数据块内的 float32 序号)
const (
	cwEPS              = 0  // 基本每股收益
	cwNavPS            = 3  // 每股净资产
	cwNotesReceivable  = 9  // 应收票据
	cwAccountsRecv     = 10 // 应收账款
	cwLongTermRecv     = 23 // 长期应收款
	cwGoodwill         = 34 // 商誉
	cwShortLoan        = 40 // 短期借款
	cwTradingLiability = 41 // 交易性金融负债
	cwNotesPayable     = 42 // 应付票据
	cwAccountsPayable  = 43 // 应付账款
	cwAdvanceReceipts  = 44 // 预收款项
	cwCurrentNonCurr   = 51 // 一年内到期的非流动负债
	cwLongLoan         = 54 // 长期借款
	cwBondsPayable     = 55 // 应付债券
	cwLongTermPayable  = 56 // 长期应付款
	cwShareCapital     = 63 // 股本
	cwCapitalReserve   = 64 // 资本公积
	cwSurplusReserve   = 65 // 盈余公积
	cwUndistributed    = 67 // 未分配利润
	cwRevenue          = 73 // 营业收入
	cwOperatingCost    = 74 // 营业成本
	cwSellingExpense   = 76 // 销售费用
	cwAdminExpense     = 77 // 管理费用
	cwFinanceExpense   = 79 // 财务费用
	cwOperatingCF      = 106 // 经营活动产生的现金流量净额
)

// CalculateCoreIndicators 从财务快照推导核心指标：
//
//	核心利润     = 营业收入 - 营业成本 - 销售费用 - 管理费用 - 财务费用
//	核心利润获现率 = 10 * 经营现金流净额 / 核心利润
//	应收款项     = 应收票据 + 应收账款 + 长期应收款
//	有息负债     = 短期借款 + 一年内到期的非流动负债 + 交易性金融负债 + 长期借款 + 应付债券
//	经营性负债   = 应付票据 + 应付账款 + 长期应付款 + 预收款项
//	股东入资     = 股本 + 资本公积
//	利润积累     = 盈余公积 + 未分配利润
func CalculateCoreIndicators(records []model.CwRecord) []model.CoreIndicator {
	result := make([]model.CoreIndicator, 0, len(records))

	for _, rec := range records {
		v := fieldReader(rec.Values)

		revenue := v(cwRevenue)
		coreProfit := revenue - v(cwOperatingCost) - v(cwSellingExpense) -
			v(cwAdminExpense) - v(cwFinanceExpense)

		var cashRatio float64
		if coreProfit != 0 {
			cashRatio = 10 * v(cwOperatingCF) / coreProfit
		}

		result = append(result, model.CoreIndicator{
			Code:                rec.Code,
			ReportDate:          rec.ReportDate,
			AnnounceDate:        rec.AnnounceDate,
			EPS:                 v(cwEPS),
			NavPS:               v(cwNavPS),
			Revenue:             revenue,
			CoreProfit:          coreProfit,
			CoreProfitCashRatio: cashRatio,
			Receivables:         v(cwNotesReceivable) + v(cwAccountsRecv) + v(cwLongTermRecv),
			InterestDebt: v(cwShortLoan) + v(cwCurrentNonCurr) + v(cwTradingLiability) +
				v(cwLongLoan) + v(cwBondsPayable),
			OperatingDebt: v(cwNotesPayable) + v(cwAccountsPayable) +
				v(cwLongTermPayable) + v(cwAdvanceReceipts),
			PaidInCapital:     v(cwShareCapital) + v(cwCapitalReserve),
			RetainedAccum:     v(cwSurplusReserve) + v(cwUndistributed),
			Goodwill:          v(cwGoodwill),
			OperatingCashFlow: v(cwOperatingCF),
		})
	}

	return result
}

// fieldReader 越界或 NaN 的字段按 0 处理，历史快照字段数不统一
func fieldReader(values []float32) func(int) float64 {
	return func(idx int) float64 {
		if idx >= len(values) {
			return 0
		}
		f := float64(values[idx])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
}
