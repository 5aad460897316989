package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/yc-quant/share2db/database"
	"github.com/yc-quant/share2db/model"
	"github.com/yc-quant/share2db/utils"
)

var DataDir, _ = utils.GetCacheDir()
var VipdocDir = filepath.Join(DataDir, "vipdoc")

var ValidPrefixes = []string{
	"sz30",     // 创业板
	"sz00",     // 深证主板
	"sh6",      // 上证主板+科创板
	"bj",       // 北证股票
	"sh000300", // 沪深300
	"sh000905", // 中证500
	"sh000852", // 中证1000
	"sh000001", // 上证指数
	"sz399001", // 深证指数
	"sz399006", // 创业板指
	"sh000680", // 科创综指
	"bj899050"} // 北证50

func GetToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// CwDataDir 财务包缓存目录，放在数据库文件旁以便跨次运行比对 md5
func CwDataDir(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "cwdata")
}

func openRepository(dbPath string) (database.DataRepository, error) {
	db, err := database.NewDatabase(model.DBConfig{Type: model.DBTypeDuckDB, DSN: dbPath})
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	if err := db.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
