package calc

import (
	"fmt"
	"sort"
	"time"

	"github.com/yc-quant/share2db/model"
)

// Period 重采样周期
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period: %s (expected week, month or year)", s)
}

// Resample 将日线聚合为周/月/年线：开盘取桶内首个交易日，收盘取末个，
// 最高最低取极值，量额求和。没有交易日的桶不产生输出。
// 桶的日期标签为自然周期的最后一天 (周日/月末/12月31日)。
// 纯函数，应作用于已复权的数据。
func Resample(bars []model.QfqData, period Period) []model.PeriodBar {
	if len(bars) == 0 {
		return nil
	}

	sorted := make([]model.QfqData, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var result []model.PeriodBar
	var curr *model.PeriodBar

	for _, bar := range sorted {
		label := bucketEnd(bar.Date, period)

		if curr == nil || !curr.Date.Equal(label) {
			if curr != nil {
				result = append(result, *curr)
			}
			curr = &model.PeriodBar{
				Symbol: bar.Symbol,
				Open:   bar.Open,
				High:   bar.High,
				Low:    bar.Low,
				Close:  bar.Close,
				Amount: bar.Amount,
				Volume: bar.Volume,
				Date:   label,
			}
			continue
		}

		if bar.High > curr.High {
			curr.High = bar.High
		}
		if bar.Low < curr.Low {
			curr.Low = bar.Low
		}
		curr.Close = bar.Close
		curr.Amount += bar.Amount
		curr.Volume += bar.Volume
	}

	if curr != nil {
		result = append(result, *curr)
	}
	return result
}

// bucketEnd 自然周期的最后一天：周以周日结束
func bucketEnd(t time.Time, period Period) time.Time {
	switch period {
	case PeriodWeek:
		offset := (7 - int(t.Weekday())) % 7
		return t.AddDate(0, 0, offset)
	case PeriodMonth:
		firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
		return firstOfNext.AddDate(0, 0, -1)
	case PeriodYear:
		return time.Date(t.Year(), 12, 31, 0, 0, 0, 0, t.Location())
	}
	return t
}
