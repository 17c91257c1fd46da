package generation

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/scheduleai/internal/schedule"
)

type Result struct {
	TaskID uint64
	Events []schedule.Event
	Err    error
}

// Task is one in-flight generation. It can be cancelled; Result blocks until
// the generator returns.
type Task struct {
	id     uint64
	cancel context.CancelFunc
	done   chan struct{}
	result Result
}

func startTask(parent context.Context, id uint64, gen Generator, req Request) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{id: id, cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				t.result = Result{TaskID: id, Err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		events, err := gen.Generate(ctx, req)
		t.result = Result{TaskID: id, Events: events, Err: err}
	}()
	return t
}

func (t *Task) ID() uint64 {
	return t.id
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) Result() Result {
	<-t.done
	return t.result
}
