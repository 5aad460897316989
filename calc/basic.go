package calc

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/yc-quant/share2db/database"
	"github.com/yc-quant/share2db/model"
	"github.com/yc-quant/share2db/utils"
)

// IncrementState 增量计算时上一交易日的状态
type IncrementState struct {
	PrevClose     float64
	LastPostFloat float64
	LastPostTotal float64
}

type xdxrInfo struct {
	Fenhong     float64
	Peigu       float64
	Peigujia    float64
	Songzhuangu float64
}

type StateIndex map[string]*IncrementState

// BasicContext 基础行情计算所需的全部输入，显式传递，不依赖包级缓存
type BasicContext struct {
	DB         database.DataRepository
	Store      *ActionStore
	StateIndex StateIndex
	StartDate  time.Time
}

// ExportStockBasicToCSV 计算并导出涨跌幅/振幅/换手率/市值等基础行情
func ExportStockBasicToCSV(
	ctx context.Context,
	db database.DataRepository,
	store *ActionStore,
	csvPath string,
) (int, error) {

	startDate, _ := db.GetLatestDate(model.TableBasic.TableName, "date")
	isIncremental := !startDate.IsZero() && startDate.Year() > 1900

	var stateIndex StateIndex
	if isIncremental {
		lastBasics, err := db.GetLatestBasics()
		if err != nil {
			return 0, fmt.Errorf("failed to query last basic state: %w", err)
		}
		stateIndex = buildStateIndex(lastBasics)
	}

	symbols, err := db.GetAllSymbols()
	if err != nil {
		return 0, fmt.Errorf("failed to query symbols: %w", err)
	}

	cw, err := utils.NewCSVWriter[model.StockBasic](csvPath)
	if err != nil {
		return 0, err
	}
	defer cw.Close()

	basicCtx := &BasicContext{
		DB:         db,
		Store:      store,
		StateIndex: stateIndex,
		StartDate:  startDate,
	}

	pipeline := utils.NewPipeline[string, model.StockBasic]()

	result, err := pipeline.Run(
		ctx,
		symbols,
		func(ctx context.Context, symbol string) ([]model.StockBasic, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			return processStockBasic(basicCtx, symbol)
		},
		func(rows []model.StockBasic) error {
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

func processStockBasic(bc *BasicContext, symbol string) ([]model.StockBasic, error) {
	isIncremental := !bc.StartDate.IsZero() && bc.StartDate.Year() > 1900

	var queryStart *time.Time
	if isIncremental {
		t := bc.StartDate.AddDate(0, 0, 1)
		queryStart = &t
	}

	stockData, err := bc.DB.QueryStockData(symbol, queryStart, nil)
	if err != nil {
		return nil, fmt.Errorf("query stock %s failed: %w", symbol, err)
	}

	if len(stockData) == 0 {
		return nil, nil
	}

	gbbqs := bc.Store.EventsBySymbol(symbol)

	if isIncremental {
		var filtered []model.GbbqData
		for _, g := range gbbqs {
			if g.Date.After(bc.StartDate) {
				filtered = append(filtered, g)
			}
		}
		gbbqs = filtered
	}

	var initState *IncrementState

	if isIncremental {
		if state, exists := bc.StateIndex[symbol]; exists {
			initState = state
		} else {
			lastRecords, err := bc.DB.GetLatestBasicBySymbol(symbol)
			if err != nil {
				return nil, fmt.Errorf("failed to fallback query for %s: %w", symbol, err)
			}

			if len(lastRecords) > 0 {
				lastRecord := lastRecords[0]
				var lastFloat, lastTotal float64
				if lastRecord.Close > 0 {
					lastFloat = lastRecord.FloatMV / lastRecord.Close / 10000
					lastTotal = lastRecord.TotalMV / lastRecord.Close / 10000
				}
				initState = &IncrementState{
					PrevClose:     lastRecord.Close,
					LastPostFloat: lastFloat,
					LastPostTotal: lastTotal,
				}
			}
		}
	}

	basics, err := CalculateStockBasic(stockData, gbbqs, initState)
	if err != nil {
		return nil, fmt.Errorf("calc %s failed: %w", symbol, err)
	}

	result := make([]model.StockBasic, len(basics))
	for i, b := range basics {
		result[i] = *b
	}

	return result, nil
}

// CalculateStockBasic 按日计算涨跌幅、振幅、换手率和市值。
// 股本数来自股本类事件的 后流通盘/后总股本 (万股)，随日期推进
func CalculateStockBasic(
	stockData []model.StockData,
	gbbqData []model.GbbqData,
	initialState *IncrementState,
) ([]*model.StockBasic, error) {

	if len(stockData) == 0 {
		return []*model.StockBasic{}, nil
	}

	results := make([]*model.StockBasic, len(stockData))
	dateMap := make(map[string]int, len(stockData))
	dateFormat := "2006-01-02"

	for i, sd := range stockData {
		dateMap[sd.Date.Format(dateFormat)] = i
	}

	xdxrMap := make(map[int]*xdxrInfo)
	sharesList := make([]model.GbbqData, 0, len(gbbqData))

	for _, item := range gbbqData {
		cat := model.EventCategory(item.Category)
		if cat.IsExRights() {
			dateStr := item.Date.Format(dateFormat)
			if idx, exists := dateMap[dateStr]; exists {
				mergeXdxr(xdxrMap, idx, item)
			} else {
				// 非交易日的事件归入下一个交易日
				idx := sort.Search(len(stockData), func(i int) bool {
					return !stockData[i].Date.Before(item.Date)
				})
				if idx < len(stockData) {
					mergeXdxr(xdxrMap, idx, item)
				}
			}
		} else if cat.IsShareCount() {
			sharesList = append(sharesList, item)
		}
	}

	sort.Slice(sharesList, func(i, j int) bool {
		return sharesList[i].Date.Before(sharesList[j].Date)
	})

	var currentFloat, currentTotal float64
	if initialState != nil {
		currentFloat = initialState.LastPostFloat
		currentTotal = initialState.LastPostTotal
	}

	shareIdx := 0
	shareLen := len(sharesList)

	for i, sd := range stockData {
		basic := &model.StockBasic{
			Date:   sd.Date,
			Symbol: sd.Symbol,
			Close:  sd.Close,
		}

		var prevClose float64
		if i == 0 {
			if initialState != nil {
				prevClose = initialState.PrevClose
			} else {
				prevClose = sd.Close
			}
		} else {
			prevClose = stockData[i-1].Close
		}

		basic.PreClose = refClose(prevClose, xdxrMap[i])

		if basic.PreClose > 0 {
			changePercent := (sd.Close - basic.PreClose) / basic.PreClose * 100
			basic.ChangePercent = math.Round(changePercent*100) / 100

			amplitude := (sd.High - sd.Low) / basic.PreClose * 100
			basic.Amplitude = math.Round(amplitude*100) / 100
		}

		for shareIdx < shareLen && !sharesList[shareIdx].Date.After(sd.Date) {
			currentFloat = sharesList[shareIdx].C3
			currentTotal = sharesList[shareIdx].C4
			shareIdx++
		}

		if currentFloat > 0 {
			val := float64(sd.Volume) / (currentFloat * 10000)
			basic.Turnover = math.Round(val*1000000) / 1000000
			fmv := currentFloat * 10000 * sd.Close
			basic.FloatMV = math.Round(fmv*100) / 100
		}

		if currentTotal > 0 {
			tmv := currentTotal * 10000 * sd.Close
			basic.TotalMV = math.Round(tmv*100) / 100
		}

		results[i] = basic
	}

	return results, nil
}

func buildStateIndex(rows []model.StockBasic) StateIndex {
	index := make(StateIndex, len(rows))
	for _, row := range rows {
		if row.Close == 0 {
			continue
		}
		index[row.Symbol] = &IncrementState{
			PrevClose:     row.Close,
			LastPostFloat: row.FloatMV / row.Close / 10000,
			LastPostTotal: row.TotalMV / row.Close / 10000,
		}
	}
	return index
}

func mergeXdxr(m map[int]*xdxrInfo, idx int, data model.GbbqData) {
	if _, ok := m[idx]; !ok {
		m[idx] = &xdxrInfo{}
	}
	x := data.Xdxr()
	info := m[idx]
	info.Fenhong += x.Fenhong
	info.Peigu += x.Peigu
	info.Songzhuangu += x.Songzhuangu
	if x.Peigujia > 0 {
		info.Peigujia = x.Peigujia
	}
}

func refClose(prevClose float64, info *xdxrInfo) float64 {
	if info == nil {
		return prevClose
	}
	denominator := 10 + info.Peigu + info.Songzhuangu
	if denominator == 0 {
		return prevClose
	}
	numerator := (prevClose*10 - info.Fenhong) + (info.Peigu * info.Peigujia)
	return numerator / denominator
}
