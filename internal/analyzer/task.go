package analyzer

import "context"

// Task is a pending analysis started by Start.
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	result Result
	err    error
}

// Start runs Analyze in the background and returns immediately. Cancelling
// ctx or calling Cancel abandons the analysis and releases its goroutine.
func (a *Analyzer) Start(ctx context.Context, text string, opts ...Option) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(t.done)
		defer cancel()
		t.result, t.err = a.Analyze(ctx, text, opts...)
	}()
	return t
}

// Done is closed once the result is available or the task was abandoned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel abandons the task. It is safe to call more than once and after
// completion.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until Done and returns the outcome.
func (t *Task) Wait() (Result, error) {
	<-t.done
	return t.result, t.err
}
