package utils

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ParquetWriter 列式导出，周期线导出选择 parquet 格式时使用
type ParquetWriter[T any] struct {
	file   *os.File
	writer *parquet.GenericWriter[T]
}

func NewParquetWriter[T any](filename string) (*ParquetWriter[T], error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	w := parquet.NewGenericWriter[T](f,
		parquet.Compression(&parquet.Snappy),
		parquet.WriteBufferSize(4<<20),
	)

	return &ParquetWriter[T]{file: f, writer: w}, nil
}

func (p *ParquetWriter[T]) Write(rows []T) error {
	_, err := p.writer.Write(rows)
	return err
}

// Close 先关 parquet writer 落 footer，再关物理文件
func (p *ParquetWriter[T]) Close() error {
	if err := p.writer.Close(); err != nil {
		p.file.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
