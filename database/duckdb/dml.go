package duckdb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/yc-quant/share2db/model"
)

func (d *DuckDBDriver) importCSV(meta *model.TableMeta, csvPath string) error {
	var colMaps []string
	for _, col := range meta.Columns {
		duckType := d.mapType(col.Type)
		colMaps = append(colMaps, fmt.Sprintf("'%s': '%s'", col.Name, duckType))
	}

	columnsStr := strings.Join(colMaps, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s
		SELECT * FROM read_csv('%s',
			header=true,
			columns={%s},
			dateformat='%%Y-%%m-%%d',
			timestampformat='%%Y-%%m-%%d %%H:%%M'
		)
	`, meta.TableName, csvPath, columnsStr)

	_, err := d.db.Exec(query)
	return err
}

func (d *DuckDBDriver) truncateTable(meta *model.TableMeta) error {

	query := fmt.Sprintf("DELETE FROM %s", meta.TableName)

	_, err := d.db.Exec(query)
	if err != nil {
		return fmt.Errorf("duckdb truncate failed: %w", err)
	}

	return nil
}

func (d *DuckDBDriver) ImportDailyStocks(path string) error {
	return d.importCSV(model.TableStocksDaily, path)
}

func (d *DuckDBDriver) ImportQfqDaily(path string) error {
	return d.importCSV(model.TableStocksQfq, path)
}

func (d *DuckDBDriver) ImportGBBQ(path string) error {
	d.truncateTable(model.TableGbbq)
	return d.importCSV(model.TableGbbq, path)
}

func (d *DuckDBDriver) ImportBasic(path string) error {
	return d.importCSV(model.TableBasic, path)
}

func (d *DuckDBDriver) ImportAdjustFactors(path string) error {
	d.truncateTable(model.TableAdjustFactor)
	return d.importCSV(model.TableAdjustFactor, path)
}

func (d *DuckDBDriver) ImportFundamentals(path string) error {
	return d.importCSV(model.TableFundamental, path)
}

func (d *DuckDBDriver) DeleteQfqBySymbols(symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf("DELETE FROM %s WHERE symbol IN (?)", model.TableStocksQfq.TableName),
		symbols,
	)
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := d.db.Exec(d.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to delete qfq rows: %w", err)
	}
	return nil
}

func (d *DuckDBDriver) DeleteFundamentalsByReportDates(dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf("DELETE FROM %s WHERE report_date IN (?)", model.TableFundamental.TableName),
		dates,
	)
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := d.db.Exec(d.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to delete fundamentals: %w", err)
	}
	return nil
}

func (d *DuckDBDriver) GetLatestDate(tableName string, dateCol string) (time.Time, error) {
	query := fmt.Sprintf("SELECT DATE(max(%s)) AS latest FROM %s", dateCol, tableName)

	var latest sql.NullTime
	err := d.db.Get(&latest, query)
	if err != nil {
		return time.Time{}, err
	}

	if !latest.Valid {
		return time.Time{}, nil
	}

	return latest.Time, nil
}

func (d *DuckDBDriver) GetAllSymbols() ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT symbol FROM %s", model.TableStocksDaily.TableName)

	var symbols []string
	err := d.db.Select(&symbols, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}

	return symbols, nil
}

// CountDailyRows 按股票统计已入库的日线行数，转换日线文件时用于断点续传
func (d *DuckDBDriver) CountDailyRows() (map[string]int64, error) {
	query := fmt.Sprintf(
		"SELECT symbol, COUNT(*) AS cnt FROM %s GROUP BY symbol",
		model.TableStocksDaily.TableName,
	)

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily rows: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var symbol string
		var cnt int64
		if err := rows.Scan(&symbol, &cnt); err != nil {
			return nil, err
		}
		counts[symbol] = cnt
	}

	return counts, rows.Err()
}

func (d *DuckDBDriver) QueryStockData(symbol string, startDate, endDate *time.Time) ([]model.StockData, error) {

	conditions := []string{"symbol = ?"}
	args := []interface{}{symbol}

	if startDate != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, *startDate)
	}
	if endDate != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, *endDate)
	}

	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE %s ORDER BY date ASC`,
		model.TableStocksDaily.TableName,
		strings.Join(conditions, " AND "),
	)

	var results []model.StockData
	if err := d.db.Select(&results, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query stocks: %w", err)
	}

	return results, nil
}

func (d *DuckDBDriver) QueryQfqBySymbol(symbol string) ([]model.QfqData, error) {
	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE symbol = ? ORDER BY date ASC`,
		model.TableStocksQfq.TableName,
	)

	var results []model.QfqData
	if err := d.db.Select(&results, query, symbol); err != nil {
		return nil, fmt.Errorf("failed to query qfq rows by symbol %s: %w", symbol, err)
	}

	return results, nil
}

func (d *DuckDBDriver) QueryAllGbbq() ([]model.GbbqData, error) {
	query := fmt.Sprintf(
		`SELECT * FROM %s ORDER BY code, date ASC`,
		model.TableGbbq.TableName,
	)

	var results []model.GbbqData
	if err := d.db.Select(&results, query); err != nil {
		return nil, fmt.Errorf("failed to query gbbq records: %w", err)
	}

	return results, nil
}

func (d *DuckDBDriver) GetLatestBasicBySymbol(symbol string) ([]model.StockBasic, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE symbol = ? ORDER BY date DESC LIMIT 1",
		model.TableBasic.TableName,
	)

	var results []model.StockBasic
	if err := d.db.Select(&results, query, symbol); err != nil {
		return nil, fmt.Errorf("failed to query latest daily basic by symbol %s: %w", symbol, err)
	}

	return results, nil
}

func (d *DuckDBDriver) GetLatestBasics() ([]model.StockBasic, error) {
	table := model.TableBasic.TableName

	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE date = (SELECT max(date) FROM %s) ORDER BY symbol`,
		table, table,
	)

	var results []model.StockBasic
	if err := d.db.Select(&results, query); err != nil {
		return nil, fmt.Errorf("failed to query latest daily basics: %w", err)
	}

	return results, nil
}
