package cmd

import (
	"context"
	"fmt"

	"github.com/yc-quant/share2db/workflow"
)

func Init(ctx context.Context, dbPath, dayFileDir string) error {
	if dbPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	db, err := openRepository(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	executor := workflow.NewTaskExecutor(db, workflow.GetRegisteredTasks())

	args := &workflow.TaskArgs{
		TempDir:       DataDir,
		VipdocDir:     VipdocDir,
		DayFileDir:    dayFileDir,
		CwDir:         CwDataDir(dbPath),
		ValidPrefixes: ValidPrefixes,
		Today:         GetToday(),
	}

	if err := executor.Run(ctx, workflow.GetInitTaskNames(), args); err != nil {
		return fmt.Errorf("workflow execution failed: %w", err)
	}

	fmt.Println("🚀 历史数据导入成功，日常更新请使用 cron 子命令")
	return nil
}
