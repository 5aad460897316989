package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yc-quant/share2db/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestActionStoreSortsByDate(t *testing.T) {
	store := NewActionStore([]model.GbbqData{
		{Category: 1, Code: "000001", Date: day(2023, 6, 1)},
		{Category: 1, Code: "000001", Date: day(2022, 6, 1)},
		{Category: 1, Code: "000001", Date: day(2024, 6, 1)},
	})

	events := store.Events("000001")
	require.Len(t, events, 3)
	assert.Equal(t, day(2022, 6, 1), events[0].Date)
	assert.Equal(t, day(2023, 6, 1), events[1].Date)
	assert.Equal(t, day(2024, 6, 1), events[2].Date)
}

func TestActionStoreDedupKeepsMaxC3(t *testing.T) {
	d := day(2023, 6, 1)
	store := NewActionStore([]model.GbbqData{
		{Category: 2, Code: "000001", Date: d, C3: 500},
		{Category: 1, Code: "000001", Date: d, C1: 5}, // 除权除息夹在中间不影响去重
		{Category: 5, Code: "000001", Date: d, C3: 800},
		{Category: 9, Code: "000001", Date: d, C3: 300},
	})

	events := store.Events("000001")
	require.Len(t, events, 2)

	capital := store.CapitalChanges("000001")
	require.Len(t, capital, 1)
	assert.InDelta(t, 800, capital[0].C3, 1e-9)

	xdxr := store.ExRights("000001")
	require.Len(t, xdxr, 1)
	assert.InDelta(t, 5, xdxr[0].C1, 1e-9)
}

func TestActionStoreDedupDifferentDatesKept(t *testing.T) {
	store := NewActionStore([]model.GbbqData{
		{Category: 5, Code: "000001", Date: day(2023, 6, 1), C3: 500},
		{Category: 5, Code: "000001", Date: day(2023, 6, 2), C3: 600},
	})

	assert.Len(t, store.Events("000001"), 2)
}

func TestActionStoreUnknownCodeReturnsEmpty(t *testing.T) {
	store := NewActionStore(nil)

	events := store.Events("999999")
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestActionStoreBySymbolStripsMarketPrefix(t *testing.T) {
	store := NewActionStore([]model.GbbqData{
		{Category: 1, Code: "000001", Date: day(2023, 6, 1)},
	})

	assert.Len(t, store.EventsBySymbol("sz000001"), 1)
	assert.Empty(t, store.EventsBySymbol("a"))
}

func TestActionStoreCodes(t *testing.T) {
	store := NewActionStore([]model.GbbqData{
		{Category: 1, Code: "600000", Date: day(2023, 6, 1)},
		{Category: 1, Code: "000001", Date: day(2023, 6, 1)},
	})

	assert.Equal(t, []string{"000001", "600000"}, store.Codes())
}
