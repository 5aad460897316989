package tdx

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayRecord(date, open, high, low, clo uint32, amount float32, volume uint32) []byte {
	buf := make([]byte, recordSize)
	binary.LittleEndian.PutUint32(buf[0:4], date)
	binary.LittleEndian.PutUint32(buf[4:8], open)
	binary.LittleEndian.PutUint32(buf[8:12], high)
	binary.LittleEndian.PutUint32(buf[12:16], low)
	binary.LittleEndian.PutUint32(buf[16:20], clo)
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(amount))
	binary.LittleEndian.PutUint32(buf[24:28], volume)
	return buf
}

func TestDecodeDayFile(t *testing.T) {
	data := dayRecord(20230301, 1000, 1050, 990, 1020, 123456.7, 5000)

	rows, err := DecodeDayFile(data, "sz000001", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "sz000001", row.Symbol)
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.Local), row.Date)
	assert.InDelta(t, 10.00, row.Open, 1e-9)
	assert.InDelta(t, 10.50, row.High, 1e-9)
	assert.InDelta(t, 9.90, row.Low, 1e-9)
	assert.InDelta(t, 10.20, row.Close, 1e-9)
	assert.Equal(t, int64(123457), row.Amount)
	assert.Equal(t, int64(5000), row.Volume)
}

func TestDecodeDayFileTrailingPartialRecord(t *testing.T) {
	data := dayRecord(20230301, 1000, 1050, 990, 1020, 100, 5000)
	data = append(data, make([]byte, 10)...) // 未写完的记录

	rows, err := DecodeDayFile(data, "sz000001", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDecodeDayFileSkipRecords(t *testing.T) {
	data := dayRecord(20230301, 1000, 1050, 990, 1020, 100, 5000)
	data = append(data, dayRecord(20230302, 1020, 1100, 1010, 1080, 200, 6000)...)

	rows, err := DecodeDayFile(data, "sz000001", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, time.Date(2023, 3, 2, 0, 0, 0, 0, time.Local), rows[0].Date)

	rows, err = DecodeDayFile(data, "sz000001", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeDayFileInvalidDate(t *testing.T) {
	data := dayRecord(20231301, 1000, 1050, 990, 1020, 100, 5000) // 13 月

	_, err := DecodeDayFile(data, "sz000001", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, int64(123457), roundHalfUp(123456.7))
	assert.Equal(t, int64(2), roundHalfUp(1.5))
	assert.Equal(t, int64(2), roundHalfUp(2.4))
	assert.Equal(t, int64(0), roundHalfUp(0))
}
