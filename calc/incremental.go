package calc

import (
	"sort"
	"time"

	"github.com/yc-quant/share2db/model"
)

// AdjustState 单只股票的复权处理状态
type AdjustState int

const (
	AdjustStateUnprocessed AdjustState = iota // 没有任何已复权行
	AdjustStatePartial                        // 存在未复权的尾部
	AdjustStateFull                           // 所有行均已复权
)

// AdjustPlan 增量复权决策
type AdjustPlan struct {
	State AdjustState
	// FullRecompute 为真时从头重算并替换该股票的全部已复权行。
	// 已复权末行之后出现除权除息事件时必须走全量重算：
	// 倒序累乘要求看到序列末尾之前的全部事件，只补尾部会产生过期因子。
	FullRecompute bool
	// AppendFrom 仅补尾部时的起始日期 (不含)，即已复权的最后一天
	AppendFrom time.Time
}

// ClassifyAdjustState 通过已复权行与原始行的覆盖关系判定状态。
// 原始表只追加不修改，已复权的最后日期覆盖到原始最后日期即为全量完成。
func ClassifyAdjustState(raw []model.StockData, adjusted []model.QfqData) AdjustState {
	if len(adjusted) == 0 {
		return AdjustStateUnprocessed
	}
	if len(raw) == 0 {
		return AdjustStateFull
	}

	lastRaw := raw[len(raw)-1].Date
	lastAdj := adjusted[len(adjusted)-1].Date

	if !lastAdj.Before(lastRaw) {
		return AdjustStateFull
	}
	return AdjustStatePartial
}

// PlanAdjust 决定跳过、补尾部还是全量重算。
// 补尾部的前提是已复权末行之后没有除权除息事件，
// 此时尾部各行的累计因子恰好为 1，直接按原始价格追加即可。
func PlanAdjust(raw []model.StockData, adjusted []model.QfqData, events []model.GbbqData) AdjustPlan {
	state := ClassifyAdjustState(raw, adjusted)

	switch state {
	case AdjustStateFull:
		return AdjustPlan{State: state}
	case AdjustStateUnprocessed:
		return AdjustPlan{State: state, FullRecompute: true}
	}

	lastAdj := adjusted[len(adjusted)-1].Date

	// 已复权末行之后的任何除权除息事件都触发全量重算。
	// 事件可能落在停牌或周末，日期在未复权首行之前，一样会改写已有因子
	for _, e := range events {
		if model.EventCategory(e.Category).IsExRights() && e.Date.After(lastAdj) {
			return AdjustPlan{State: state, FullRecompute: true}
		}
	}

	return AdjustPlan{State: state, AppendFrom: lastAdj}
}

// ApplyAdjust 执行增量复权。
// 返回需要写入的行，replace 为真表示先删除该股票的全部已复权行。
// 已全量复权的股票返回空结果，重复执行是幂等的。
func ApplyAdjust(raw []model.StockData, adjusted []model.QfqData, events []model.GbbqData) (rows []model.QfqData, replace bool, err error) {
	sort.Slice(raw, func(i, j int) bool { return raw[i].Date.Before(raw[j].Date) })
	sort.Slice(adjusted, func(i, j int) bool { return adjusted[i].Date.Before(adjusted[j].Date) })

	plan := PlanAdjust(raw, adjusted, events)

	switch {
	case plan.State == AdjustStateFull:
		return nil, false, nil

	case plan.FullRecompute:
		rows, err = AdjustDaily(raw, events)
		return rows, plan.State == AdjustStatePartial, err

	default:
		// 尾部无事件，因子为 1，按原始价格追加
		for _, sd := range raw {
			if !sd.Date.After(plan.AppendFrom) {
				continue
			}
			if sd.Open == 0 {
				continue
			}
			rows = append(rows, model.QfqData{
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
		return rows, false, nil
	}
}
