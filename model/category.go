package model

import "fmt"

// EventCategory 股本变迁记录的类别，GBBQ 文件中为 1~14 的整数编码
type EventCategory int

const (
	CategoryXdxr             EventCategory = 1  // 除权除息
	CategoryRightsListing    EventCategory = 2  // 送配股上市
	CategoryNonTradeListing  EventCategory = 3  // 非流通股上市
	CategoryUnknownChange    EventCategory = 4  // 未知股本变动
	CategoryCapitalChange    EventCategory = 5  // 股本变化
	CategoryOffering         EventCategory = 6  // 增发新股
	CategoryBuyback          EventCategory = 7  // 股份回购
	CategoryOfferingListing  EventCategory = 8  // 增发新股上市
	CategoryConvertedListing EventCategory = 9  // 转配股上市
	CategoryBondListing      EventCategory = 10 // 可转债上市
	CategoryShareResize      EventCategory = 11 // 扩缩股
	CategoryNonTradeShrink   EventCategory = 12 // 非流通股缩股
	CategoryCallWarrant      EventCategory = 13 // 送认购权证
	CategoryPutWarrant       EventCategory = 14 // 送认沽权证
)

// ParseCategory 校验原始编码，未知编码视为文件格式问题而不是静默跳过
func ParseCategory(raw int) (EventCategory, error) {
	if raw < 1 || raw > 14 {
		return 0, fmt.Errorf("unknown gbbq category: %d", raw)
	}
	return EventCategory(raw), nil
}

func (c EventCategory) String() string {
	switch c {
	case CategoryXdxr:
		return "除权除息"
	case CategoryRightsListing:
		return "送配股上市"
	case CategoryNonTradeListing:
		return "非流通股上市"
	case CategoryUnknownChange:
		return "未知股本变动"
	case CategoryCapitalChange:
		return "股本变化"
	case CategoryOffering:
		return "增发新股"
	case CategoryBuyback:
		return "股份回购"
	case CategoryOfferingListing:
		return "增发新股上市"
	case CategoryConvertedListing:
		return "转配股上市"
	case CategoryBondListing:
		return "可转债上市"
	case CategoryShareResize:
		return "扩缩股"
	case CategoryNonTradeShrink:
		return "非流通股缩股"
	case CategoryCallWarrant:
		return "送认购权证"
	case CategoryPutWarrant:
		return "送认沽权证"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// IsExRights 是否除权除息事件，C1~C4 含义为 分红/配股价/送转股/配股 (每10股)
func (c EventCategory) IsExRights() bool {
	return c == CategoryXdxr
}

// IsShareCount 事件的 C3/C4 是否携带 后流通盘/后总股本 (万股)
func (c EventCategory) IsShareCount() bool {
	switch c {
	case CategoryRightsListing, CategoryNonTradeListing, CategoryCapitalChange,
		CategoryBuyback, CategoryOfferingListing, CategoryConvertedListing,
		CategoryBondListing:
		return true
	case CategoryXdxr, CategoryUnknownChange, CategoryOffering,
		CategoryShareResize, CategoryNonTradeShrink,
		CategoryCallWarrant, CategoryPutWarrant:
		return false
	}
	return false
}

// IsDedupGroup 同日多条记录只保留 C3 最大一条的类别组
func (c EventCategory) IsDedupGroup() bool {
	switch c {
	case CategoryRightsListing, CategoryCapitalChange, CategoryConvertedListing:
		return true
	default:
		return false
	}
}
