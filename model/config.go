package model

type DBType string

const (
	DBTypeDuckDB DBType = "duckdb"
)

type DBConfig struct {
	Type DBType
	DSN  string
}
