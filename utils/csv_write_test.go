package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type csvTestRow struct {
	Symbol  string    `col:"symbol"`
	Close   float64   `col:"close"`
	Date    time.Time `col:"date" type:"date"`
	Updated time.Time `col:"updated"`
	Ignored string
}

func TestCSVWriterWritesTaggedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter[csvTestRow](path)
	require.NoError(t, err)

	rows := []csvTestRow{
		{
			Symbol:  "sz000001",
			Close:   10.25,
			Date:    time.Date(2023, 3, 1, 0, 0, 0, 0, time.Local),
			Updated: time.Date(2023, 3, 1, 15, 30, 0, 0, time.Local),
			Ignored: "x",
		},
		{Symbol: "sz000002", Close: 5.5},
	}
	require.NoError(t, w.Write(rows))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	// 无 col 标签的字段不导出
	assert.Equal(t,
		"symbol,close,date,updated\n"+
			"sz000001,10.25,2023-03-01,2023-03-01 15:30\n"+
			"sz000002,5.5,,\n", // 零值时间留空
		content)
}

func TestCSVWriterEmptyWriteLeavesFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter[csvTestRow](path)
	require.NoError(t, err)

	require.NoError(t, w.Write(nil))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewCSVWriterRejectsUntaggedType(t *testing.T) {
	type noTags struct{ A int }

	_, err := NewCSVWriter[noTags](filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}
