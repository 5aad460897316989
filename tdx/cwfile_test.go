package tdx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCwFile 构造两条记录的财务快照，第二条数据块前插入 pad 字节的填充
func buildCwFile(t *testing.T, pad int) string {
	t.Helper()

	const chunkBytes = 16 // 4 个 float32

	var buf bytes.Buffer
	header := cwHeader{
		Flag:       1,
		ReportDate: 20230331,
		Count:      2,
		ChunkBytes: chunkBytes,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))

	indexEnd := cwHeaderSize + 2*cwIndexItemSize
	offsets := []int{indexEnd, indexEnd + chunkBytes + pad}
	codes := []string{"000001", "600000"}

	for i := 0; i < 2; i++ {
		entry := make([]byte, cwIndexItemSize)
		copy(entry[0:6], codes[i])
		binary.LittleEndian.PutUint32(entry[7:11], uint32(offsets[i]))
		buf.Write(entry)
	}

	values := [][]float32{
		{1.5, 2.5, 3.5, 4.5},
		{10, 20, 30, 40},
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, values[0]))
	buf.Write(make([]byte, pad))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, values[1]))

	path := filepath.Join(t.TempDir(), "gpcw20230331.dat")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestDecodeCwFile(t *testing.T) {
	path := buildCwFile(t, 0)

	records, err := DecodeCwFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "000001", records[0].Code)
	assert.Equal(t, time.Date(2023, 3, 31, 0, 0, 0, 0, time.Local), records[0].ReportDate)
	require.Len(t, records[0].Values, 4)
	assert.InDelta(t, 1.5, records[0].Values[0], 1e-6)
	assert.InDelta(t, 4.5, records[0].Values[3], 1e-6)

	assert.Equal(t, "600000", records[1].Code)
	assert.InDelta(t, 40, records[1].Values[3], 1e-6)
}

func TestDecodeCwFileReseeksOnPadding(t *testing.T) {
	// 记录之间存在 4 字节填充，游标与索引偏移不一致，应以索引为准
	path := buildCwFile(t, 4)

	records, err := DecodeCwFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.InDelta(t, 10, records[1].Values[0], 1e-6)
}

func TestDecodeCwFileTruncatedPayload(t *testing.T) {
	path := buildCwFile(t, 0)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-8], 0644))

	_, err = DecodeCwFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestDecodeCwFileTruncatedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpcw.dat")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0644))

	_, err := DecodeCwFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestParseAnnounceDate(t *testing.T) {
	assert.Equal(t, time.Date(2023, 4, 28, 0, 0, 0, 0, time.Local), parseAnnounceDate(230428))
	assert.Equal(t, time.Date(1999, 12, 31, 0, 0, 0, 0, time.Local), parseAnnounceDate(991231))
	assert.True(t, parseAnnounceDate(0).IsZero())
	assert.True(t, parseAnnounceDate(231332).IsZero()) // 13 月
}
