package calc

import (
	"sort"

	"github.com/yc-quant/share2db/model"
)

// ActionStore 股本变迁事件的内存索引，按代码查询。
// 构建后只读，可被多个 goroutine 并发查询。
type ActionStore struct {
	byCode map[string][]model.GbbqData
}

// NewActionStore 建立按代码的索引并完成去重:
// 送配股上市/股本变化/转配股上市 三类同一天出现多条时，
// 只保留 C3 (后流通盘) 最大的一条，其余视为重复记录丢弃。
func NewActionStore(events []model.GbbqData) *ActionStore {
	byCode := make(map[string][]model.GbbqData)
	for _, e := range events {
		byCode[e.Code] = append(byCode[e.Code], e)
	}

	for code, list := range byCode {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Date.Before(list[j].Date)
		})
		byCode[code] = dedupCapitalEvents(list)
	}

	return &ActionStore{byCode: byCode}
}

func dedupCapitalEvents(list []model.GbbqData) []model.GbbqData {
	result := make([]model.GbbqData, 0, len(list))
	kept := make(map[string]int) // date -> 去重组记录在 result 中的下标

	for _, e := range list {
		if !model.EventCategory(e.Category).IsDedupGroup() {
			result = append(result, e)
			continue
		}
		key := e.Date.Format("2006-01-02")
		if idx, exists := kept[key]; exists {
			if e.C3 > result[idx].C3 {
				result[idx] = e
			}
			continue
		}
		kept[key] = len(result)
		result = append(result, e)
	}
	return result
}

// Events 返回该代码的全部事件，按日期升序。
// 没有任何记录时返回空切片，调用方按零事件处理 (因子恒为 1)。
func (s *ActionStore) Events(code string) []model.GbbqData {
	if data, exists := s.byCode[code]; exists {
		return data
	}
	return []model.GbbqData{}
}

// ExRights 返回该代码的除权除息事件
func (s *ActionStore) ExRights(code string) []model.GbbqData {
	var result []model.GbbqData
	for _, e := range s.byCode[code] {
		if model.EventCategory(e.Category).IsExRights() {
			result = append(result, e)
		}
	}
	return result
}

// CapitalChanges 返回携带股本数的事件 (去重后)
func (s *ActionStore) CapitalChanges(code string) []model.GbbqData {
	var result []model.GbbqData
	for _, e := range s.byCode[code] {
		if model.EventCategory(e.Category).IsShareCount() {
			result = append(result, e)
		}
	}
	return result
}

// Codes 返回有事件记录的全部代码
func (s *ActionStore) Codes() []string {
	codes := make([]string, 0, len(s.byCode))
	for code := range s.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// EventsBySymbol 以带市场前缀的 symbol 查询 (如 sz000001)
func (s *ActionStore) EventsBySymbol(symbol string) []model.GbbqData {
	if len(symbol) < 2 {
		return []model.GbbqData{}
	}
	return s.Events(symbol[2:])
}

// ExRightsBySymbol 以带市场前缀的 symbol 查询除权除息事件
func (s *ActionStore) ExRightsBySymbol(symbol string) []model.GbbqData {
	if len(symbol) < 2 {
		return nil
	}
	return s.ExRights(symbol[2:])
}

// CapitalChangesBySymbol 以带市场前缀的 symbol 查询股本事件
func (s *ActionStore) CapitalChangesBySymbol(symbol string) []model.GbbqData {
	if len(symbol) < 2 {
		return nil
	}
	return s.CapitalChanges(symbol[2:])
}
