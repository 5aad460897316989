package cmd

import (
	"context"
	"fmt"

	"github.com/yc-quant/share2db/workflow"
)

func Cron(ctx context.Context, dbPath string) error {
	db, err := openRepository(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ctx.Err(); err != nil {
		return err
	}

	executor := workflow.NewTaskExecutor(db, workflow.GetRegisteredTasks())

	args := &workflow.TaskArgs{
		TempDir:       DataDir,
		VipdocDir:     VipdocDir,
		CwDir:         CwDataDir(dbPath),
		ValidPrefixes: ValidPrefixes,
		Today:         GetToday(),
	}

	if err := executor.Run(ctx, workflow.GetUpdateTaskNames(), args); err != nil {
		return fmt.Errorf("workflow execution failed: %w", err)
	}

	fmt.Println("🚀 今日任务执行成功")
	return nil
}
