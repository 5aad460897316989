package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"time"
)

// CSVWriter 按 col 标签把结构体切片写成 CSV，供 DuckDB read_csv 导入。
// 表头在首次写入时输出，没有数据则文件保持为空。
type CSVWriter[T any] struct {
	file          *os.File
	writer        *csv.Writer
	headerWritten bool
	columns       []csvColumn
}

type csvColumn struct {
	index  int
	header string
	format func(v reflect.Value) string
}

func NewCSVWriter[T any](filename string) (*CSVWriter[T], error) {
	columns, err := buildColumns[T]()
	if err != nil {
		return nil, err
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &CSVWriter[T]{
		file:    f,
		writer:  csv.NewWriter(f),
		columns: columns,
	}, nil
}

// buildColumns 从 col 标签解析列定义，没有 col 标签的字段不导出。
// 日期列 (type:"date") 输出 yyyy-mm-dd，其余时间列输出到分钟，
// 与导入侧声明的 dateformat / timestampformat 保持一致。
func buildColumns[T any]() ([]csvColumn, error) {
	var zero T
	typ := reflect.TypeOf(zero)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("csv writer requires a struct type, got %s", typ.Kind())
	}

	timeType := reflect.TypeOf(time.Time{})

	var columns []csvColumn
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		header := field.Tag.Get("col")
		if header == "" {
			continue
		}

		col := csvColumn{index: i, header: header}

		switch {
		case field.Type == timeType && field.Tag.Get("type") == "date":
			col.format = func(v reflect.Value) string {
				return formatTime(v.Interface().(time.Time), "2006-01-02")
			}
		case field.Type == timeType:
			col.format = func(v reflect.Value) string {
				return formatTime(v.Interface().(time.Time), "2006-01-02 15:04")
			}
		default:
			col.format = func(v reflect.Value) string {
				return fmt.Sprint(v.Interface())
			}
		}

		columns = append(columns, col)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("type %s has no col tags", typ.Name())
	}
	return columns, nil
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func (cw *CSVWriter[T]) Write(rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	if !cw.headerWritten {
		header := make([]string, len(cw.columns))
		for i, col := range cw.columns {
			header[i] = col.header
		}
		if err := cw.writer.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		cw.headerWritten = true
	}

	record := make([]string, len(cw.columns))
	for _, row := range rows {
		val := reflect.ValueOf(row)
		if val.Kind() == reflect.Ptr {
			val = val.Elem()
		}
		for i, col := range cw.columns {
			record[i] = col.format(val.Field(col.index))
		}
		if err := cw.writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

func (cw *CSVWriter[T]) Close() error {
	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		cw.file.Close()
		return fmt.Errorf("failed to flush: %w", err)
	}
	return cw.file.Close()
}
