package utils

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Pipeline 按股票或文件粒度并发计算，产出行交给单一消费者串行写出。
// 单个输入失败只记录错误不中断整批，符合坏文件跳过的处理约定。
type Pipeline[I, O any] struct {
	workers int

	errMu sync.Mutex
	errs  []error
}

// PipelineResult 一次 Run 的汇总：写出行数与收集到的错误
type PipelineResult struct {
	OutputRows int64
	Errors     []error
}

func NewPipeline[I, O any]() *Pipeline[I, O] {
	return &Pipeline[I, O]{workers: runtime.NumCPU()}
}

// Run 对每个输入并发调用 process，非空结果交给 consume。
// consume 始终在同一个 goroutine 里执行，写入器无需加锁。
func (p *Pipeline[I, O]) Run(
	ctx context.Context,
	inputs []I,
	process func(ctx context.Context, input I) ([]O, error),
	consume func(rows []O) error,
) (*PipelineResult, error) {
	p.errs = nil

	if len(inputs) == 0 {
		return &PipelineResult{}, nil
	}

	in := make(chan I)
	out := make(chan []O, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for input := range in {
				rows, err := p.safeProcess(ctx, input, process)
				if err != nil {
					p.addError(err)
					continue
				}
				if len(rows) > 0 {
					out <- rows
				}
			}
		}()
	}

	var written int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		for rows := range out {
			if err := consume(rows); err != nil {
				p.addError(fmt.Errorf("consume error: %w", err))
				continue
			}
			written += int64(len(rows))
		}
	}()

feed:
	for _, input := range inputs {
		select {
		case in <- input:
		case <-ctx.Done():
			p.addError(ctx.Err())
			break feed
		}
	}
	close(in)
	wg.Wait()
	close(out)
	<-done

	return &PipelineResult{OutputRows: written, Errors: p.snapshotErrors()}, nil
}

// safeProcess 兜住 process 里的 panic，坏数据只损失单个输入
func (p *Pipeline[I, O]) safeProcess(
	ctx context.Context,
	input I,
	process func(ctx context.Context, input I) ([]O, error),
) (rows []O, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic processing input: %v", r)
		}
	}()
	return process(ctx, input)
}

func (p *Pipeline[I, O]) addError(err error) {
	p.errMu.Lock()
	p.errs = append(p.errs, err)
	p.errMu.Unlock()
}

func (p *Pipeline[I, O]) snapshotErrors() []error {
	p.errMu.Lock()
	defer p.errMu.Unlock()

	if len(p.errs) == 0 {
		return nil
	}
	out := make([]error, len(p.errs))
	copy(out, p.errs)
	return out
}

func (r *PipelineResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *PipelineResult) FirstError() error {
	if len(r.Errors) > 0 {
		return r.Errors[0]
	}
	return nil
}

func (r *PipelineResult) ErrorSummary() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return fmt.Sprintf("%d errors, first: %v", len(r.Errors), r.Errors[0])
}
