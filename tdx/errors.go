package tdx

import "errors"

var (
	// ErrMalformedRecord 二进制内容损坏或被截断，调用方应跳过该文件并继续批处理
	ErrMalformedRecord = errors.New("malformed binary record")

	// ErrInconsistentOffset 索引中记录的偏移与读取游标不一致，
	// 以记录的偏移为准重新定位，仅作为警告上报
	ErrInconsistentOffset = errors.New("inconsistent data offset")
)
