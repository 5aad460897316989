package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yc-quant/share2db/database"
)

type runRecorder struct {
	mu    sync.Mutex
	order []string
}

func (r *runRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

func (r *runRecorder) indexOf(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.order {
		if n == name {
			return i
		}
	}
	return -1
}

func recordingTask(rec *runRecorder, name string, deps ...string) *Task {
	return &Task{
		Name:      name,
		DependsOn: deps,
		Executor: func(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
			rec.record(name)
			return &TaskResult{State: StateCompleted}, nil
		},
	}
}

func TestExecutorRunsDependenciesFirst(t *testing.T) {
	rec := &runRecorder{}
	tasks := map[string]*Task{
		"a": recordingTask(rec, "a"),
		"b": recordingTask(rec, "b", "a"),
		"c": recordingTask(rec, "c", "b"),
	}

	executor := NewTaskExecutor(nil, tasks)
	err := executor.Run(context.Background(), []string{"c", "a", "b"}, &TaskArgs{})
	require.NoError(t, err)

	require.Len(t, rec.order, 3)
	assert.Less(t, rec.indexOf("a"), rec.indexOf("b"))
	assert.Less(t, rec.indexOf("b"), rec.indexOf("c"))
}

func TestExecutorSkipCondition(t *testing.T) {
	rec := &runRecorder{}
	skipped := recordingTask(rec, "skipped")
	skipped.SkipIf = func(ctx context.Context, db database.DataRepository, args *TaskArgs) bool {
		return true
	}

	tasks := map[string]*Task{
		"skipped": skipped,
		"after":   recordingTask(rec, "after", "skipped"),
	}

	executor := NewTaskExecutor(nil, tasks)
	err := executor.Run(context.Background(), []string{"skipped", "after"}, &TaskArgs{})
	require.NoError(t, err)

	// 被跳过的任务不执行，但其下游照常运行
	assert.Equal(t, -1, rec.indexOf("skipped"))
	assert.NotEqual(t, -1, rec.indexOf("after"))
}

func TestExecutorStopsOnError(t *testing.T) {
	rec := &runRecorder{}
	failing := &Task{
		Name: "failing",
		Executor: func(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
			return nil, errors.New("boom")
		},
	}

	tasks := map[string]*Task{
		"failing": failing,
		"after":   recordingTask(rec, "after", "failing"),
	}

	executor := NewTaskExecutor(nil, tasks)
	err := executor.Run(context.Background(), []string{"failing", "after"}, &TaskArgs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
	assert.Equal(t, -1, rec.indexOf("after"))
}

func TestExecutorSkipErrorMode(t *testing.T) {
	rec := &runRecorder{}
	optional := &Task{
		Name:    "optional",
		OnError: ErrorModeSkip,
		Executor: func(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
			return nil, errors.New("boom")
		},
	}

	tasks := map[string]*Task{
		"optional": optional,
		"other":    recordingTask(rec, "other"),
	}

	executor := NewTaskExecutor(nil, tasks)
	err := executor.Run(context.Background(), []string{"optional", "other"}, &TaskArgs{})
	require.NoError(t, err)
	assert.NotEqual(t, -1, rec.indexOf("other"))
}

func TestExecutorUnknownTask(t *testing.T) {
	executor := NewTaskExecutor(nil, map[string]*Task{})
	err := executor.Run(context.Background(), []string{"missing"}, &TaskArgs{})
	require.Error(t, err)
}

func TestExecutorCircularDependency(t *testing.T) {
	rec := &runRecorder{}
	tasks := map[string]*Task{
		"a": recordingTask(rec, "a", "b"),
		"b": recordingTask(rec, "b", "a"),
	}

	executor := NewTaskExecutor(nil, tasks)
	err := executor.Run(context.Background(), []string{"a", "b"}, &TaskArgs{})
	require.Error(t, err)
}

func TestExecutorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &runRecorder{}
	executor := NewTaskExecutor(nil, map[string]*Task{"a": recordingTask(rec, "a")})
	err := executor.Run(ctx, []string{"a"}, &TaskArgs{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRegisteredTaskWiring(t *testing.T) {
	tasks := GetRegisteredTasks()
	for _, name := range GetUpdateTaskNames() {
		assert.Contains(t, tasks, name)
	}
	for _, name := range GetInitTaskNames() {
		assert.Contains(t, tasks, name)
	}
	assert.Contains(t, tasks["calc_factor"].DependsOn, "calc_basic")
	assert.Contains(t, tasks["adjust_daily"].DependsOn, "update_gbbq")
}
