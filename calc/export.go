package calc

import (
	"context"
	"fmt"
	"sync"

	"github.com/yc-quant/share2db/database"
	"github.com/yc-quant/share2db/model"
	"github.com/yc-quant/share2db/utils"
)

// ExportFactorsToCSV 并发计算全部股票的复权因子并写入 CSV
func ExportFactorsToCSV(
	ctx context.Context,
	db database.DataRepository,
	store *ActionStore,
	csvPath string,
) (int, error) {

	symbols, err := db.GetAllSymbols()
	if err != nil {
		return 0, fmt.Errorf("failed to query symbols: %w", err)
	}

	cw, err := utils.NewCSVWriter[model.Factor](csvPath)
	if err != nil {
		return 0, err
	}
	defer cw.Close()

	pipeline := utils.NewPipeline[string, model.Factor]()

	result, err := pipeline.Run(
		ctx,
		symbols,
		func(ctx context.Context, symbol string) ([]model.Factor, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			stockData, err := db.QueryStockData(symbol, nil, nil)
			if err != nil {
				return nil, fmt.Errorf("query stock %s failed: %w", symbol, err)
			}
			return CalculateFqFactor(stockData, store.EventsBySymbol(symbol))
		},
		func(rows []model.Factor) error {
			return cw.Write(rows)
		},
	)
	if err != nil {
		return 0, err
	}

	if result.HasErrors() {
		return 0, fmt.Errorf("export completed with %s", result.ErrorSummary())
	}

	return int(result.OutputRows), nil
}

// ExportQfqToCSV 增量前复权：逐股票判定处理状态，补尾部或全量重算，
// 结果写入 CSV。返回写入行数和需要先清除旧复权行的股票列表。
func ExportQfqToCSV(
	ctx context.Context,
	db database.DataRepository,
	store *ActionStore,
	csvPath string,
) (int, []string, error) {

	symbols, err := db.GetAllSymbols()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to query symbols: %w", err)
	}

	cw, err := utils.NewCSVWriter[model.QfqData](csvPath)
	if err != nil {
		return 0, nil, err
	}
	defer cw.Close()

	var replaceMu sync.Mutex
	var replaceSymbols []string

	pipeline := utils.NewPipeline[string, model.QfqData]()

	result, err := pipeline.Run(
		ctx,
		symbols,
		func(ctx context.Context, symbol string) ([]model.QfqData, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			raw, err := db.QueryStockData(symbol, nil, nil)
			if err != nil {
				return nil, fmt.Errorf("query stock %s failed: %w", symbol, err)
			}
			adjusted, err := db.QueryQfqBySymbol(symbol)
			if err != nil {
				return nil, fmt.Errorf("query qfq %s failed: %w", symbol, err)
			}

			rows, replace, err := ApplyAdjust(raw, adjusted, store.EventsBySymbol(symbol))
			if err != nil {
				return nil, fmt.Errorf("adjust %s failed: %w", symbol, err)
			}

			if replace {
				replaceMu.Lock()
				replaceSymbols = append(replaceSymbols, symbol)
				replaceMu.Unlock()
			}
			return rows, nil
		},
		func(rows []model.QfqData) error {
			return cw.Write(rows)
		},
	)
	if err != nil {
		return 0, nil, err
	}

	if result.HasErrors() {
		return 0, nil, fmt.Errorf("adjust completed with %s", result.ErrorSummary())
	}

	return int(result.OutputRows), replaceSymbols, nil
}
