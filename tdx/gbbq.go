package tdx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/yc-quant/share2db/model"
)

// DecodeGbbqFile 解密并解析股本变迁文件。
// 文件头 4 字节为记录数，其后每条记录 29 字节:
// 3 个 8 字节加密块 + 5 字节明文
func DecodeGbbqFile(gbbqFile string) ([]model.GbbqData, error) {
	hexStr := strings.Join(strings.Fields(HexKeys), "")
	keys, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex keys: %w", err)
	}

	content, err := os.ReadFile(gbbqFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read GBBQ file: %w", err)
	}

	if len(content) < 4 {
		return nil, fmt.Errorf("%w: gbbq file too short", ErrMalformedRecord)
	}

	count := int(binary.LittleEndian.Uint32(content[0:4]))
	result := make([]model.GbbqData, 0, count)

	pos := 4
	totalLen := len(content)
	var clearData [29]byte

	for i := 0; i < count; i++ {
		if pos+29 > totalLen {
			break
		}

		decryptBlockToBuf(keys, content[pos:pos+8], clearData[0:8])
		pos += 8
		decryptBlockToBuf(keys, content[pos:pos+8], clearData[8:16])
		pos += 8
		decryptBlockToBuf(keys, content[pos:pos+8], clearData[16:24])
		pos += 8
		copy(clearData[24:29], content[pos:pos+5])
		pos += 5

		category, err := model.ParseCategory(int(clearData[12]))
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedRecord, i, err)
		}

		codeBytes := clearData[1:8]
		strLen := 0
		for k := 0; k < len(codeBytes); k++ {
			if codeBytes[k] == 0 {
				break
			}
			strLen++
		}
		code := string(codeBytes[:strLen])

		dateInt := binary.LittleEndian.Uint32(clearData[8:12]) // e.g. 20230501
		dateTime, err := fastParseDate(dateInt)
		if err != nil {
			// 个别历史记录日期为 0，跳过
			continue
		}

		c1 := float64(math.Float32frombits(binary.LittleEndian.Uint32(clearData[13:17])))
		c2 := float64(math.Float32frombits(binary.LittleEndian.Uint32(clearData[17:21])))
		c3 := float64(math.Float32frombits(binary.LittleEndian.Uint32(clearData[21:25])))
		c4 := float64(math.Float32frombits(binary.LittleEndian.Uint32(clearData[25:29])))

		result = append(result, model.GbbqData{
			Category: int(category),
			Code:     code,
			Date:     dateTime,
			C1:       c1,
			C2:       c2,
			C3:       c3,
			C4:       c4,
		})
	}

	return result, nil
}

// fastParseDate 将 YYYYMMDD 整数转为 time.Time
func fastParseDate(date uint32) (time.Time, error) {
	if date == 0 {
		return time.Time{}, fmt.Errorf("zero date")
	}
	y := int(date / 10000)
	m := int((date % 10000) / 100)
	d := int(date % 100)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("invalid date: %d", date)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
}

// decryptBlockToBuf 解密一个 8 字节块，Blowfish 变体，
// 轮密钥和 S 盒均来自 HexKeys 固定密钥表
func decryptBlockToBuf(keys, encrypted, dst []byte) {
	if len(encrypted) < 8 || len(dst) < 8 {
		return
	}

	eax := binary.LittleEndian.Uint32(keys[0x44:0x48])
	A := binary.LittleEndian.Uint32(encrypted[0:4])
	B := binary.LittleEndian.Uint32(encrypted[4:8])

	num := eax ^ A
	numold := B

	for j := 0x40; j >= 4; j -= 4 {
		ebx := (num & 0xFF0000) >> 16
		offset := int(ebx)*4 + 0x448
		eax = binary.LittleEndian.Uint32(keys[offset : offset+4])

		ebx = num >> 24
		offset = int(ebx)*4 + 0x48
		eaxAdd := binary.LittleEndian.Uint32(keys[offset : offset+4])
		eax += eaxAdd

		ebx = (num & 0xFF00) >> 8
		offset = int(ebx)*4 + 0x848
		eaxXor := binary.LittleEndian.Uint32(keys[offset : offset+4])
		eax ^= eaxXor

		ebx = num & 0xFF
		offset = int(ebx)*4 + 0xC48
		eaxAdd = binary.LittleEndian.Uint32(keys[offset : offset+4])
		eax += eaxAdd

		eaxXor = binary.LittleEndian.Uint32(keys[j : j+4])
		eax ^= eaxXor

		temp := num
		num = numold ^ eax
		numold = temp
	}

	numoldOp := binary.LittleEndian.Uint32(keys[0:4])
	numold ^= numoldOp

	binary.LittleEndian.PutUint32(dst[0:4], numold)
	binary.LittleEndian.PutUint32(dst[4:8], num)
}
