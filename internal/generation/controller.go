// Package generation runs the prompt-to-schedule workflow:
//
//	Idle --Submit--> Submitting --success--> Idle (draft cleared)
//	Submitting --failure--> Failed --Acknowledge--> Idle
//	Failed --Retry--> Submitting
//	Submitting --Cancel--> Idle (draft kept)
//
// At most one Task is outstanding at a time.
package generation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sandeepkv93/scheduleai/internal/logging"
	"github.com/sandeepkv93/scheduleai/internal/schedule"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusFailed     Status = "failed"
)

// Controller owns the draft prompt and the workflow status. It is mutated
// only from the UI event loop.
type Controller struct {
	prompt  string
	status  Status
	failure string
	gen     Generator
	logger  *slog.Logger
	nextID  uint64
	task    *Task
}

func NewController(gen Generator, logger *slog.Logger) Controller {
	if gen == nil {
		gen = SimulatedGenerator{}
	}
	return Controller{status: StatusIdle, gen: gen, logger: logging.OrDiscard(logger)}
}

func (c *Controller) Prompt() string {
	return c.prompt
}

func (c *Controller) Status() Status {
	return c.status
}

func (c *Controller) FailureReason() string {
	return c.failure
}

// Pending is the outstanding task, or nil.
func (c *Controller) Pending() *Task {
	return c.task
}

// CanSubmit mirrors the Generate button's enabled state.
func (c *Controller) CanSubmit() bool {
	return c.status == StatusIdle && strings.TrimSpace(c.prompt) != ""
}

// UpdatePrompt replaces the draft. No validation happens here.
func (c *Controller) UpdatePrompt(text string) {
	c.prompt = text
}

// Submit starts a generation. When the draft is blank or the controller is
// not idle it declines with a coded *Error and changes nothing.
func (c *Controller) Submit(ctx context.Context) (*Task, error) {
	switch c.status {
	case StatusSubmitting:
		return nil, &Error{Code: ErrBusy, Message: "a generation is already running"}
	case StatusFailed:
		return nil, &Error{Code: ErrUnacknowledged, Message: "retry or dismiss the failed generation first"}
	}
	if strings.TrimSpace(c.prompt) == "" {
		return nil, &Error{Code: ErrEmptyPrompt, Message: "prompt is empty"}
	}
	return c.start(ctx), nil
}

// Retry re-submits the kept draft after a failure.
func (c *Controller) Retry(ctx context.Context) (*Task, error) {
	if c.status != StatusFailed {
		return nil, &Error{Code: ErrNothingToAcknowledge, Message: "no failed generation to retry"}
	}
	if strings.TrimSpace(c.prompt) == "" {
		return nil, &Error{Code: ErrEmptyPrompt, Message: "prompt is empty"}
	}
	c.failure = ""
	return c.start(ctx), nil
}

func (c *Controller) start(ctx context.Context) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	c.nextID++
	req := Request{Prompt: strings.TrimSpace(c.prompt)}
	c.status = StatusSubmitting
	c.task = startTask(ctx, c.nextID, c.gen, req)
	c.logger.Info("generation submitted", "task", c.nextID, "prompt_chars", len(req.Prompt))
	return c.task
}

// Complete consumes a task result. It returns the generated events and true
// only for a successful result of the current task; stale results are
// dropped.
func (c *Controller) Complete(res Result) ([]schedule.Event, bool) {
	if c.status != StatusSubmitting || c.task == nil || c.task.id != res.TaskID {
		c.logger.Debug("dropping stale generation result", "task", res.TaskID)
		return nil, false
	}
	c.task = nil
	if res.Err != nil {
		c.status = StatusFailed
		c.failure = res.Err.Error()
		c.logger.Warn("generation failed", "task", res.TaskID, "err", res.Err)
		return nil, false
	}
	c.status = StatusIdle
	c.prompt = ""
	c.logger.Info("generation finished", "task", res.TaskID, "events", len(res.Events))
	return res.Events, true
}

// Acknowledge dismisses a failure and returns to Idle keeping the draft.
func (c *Controller) Acknowledge() error {
	if c.status != StatusFailed {
		return &Error{Code: ErrNothingToAcknowledge, Message: "no failed generation"}
	}
	c.status = StatusIdle
	c.failure = ""
	return nil
}

// Cancel aborts the outstanding task and returns to Idle keeping the draft.
// It reports whether anything was cancelled.
func (c *Controller) Cancel() bool {
	if c.status != StatusSubmitting || c.task == nil {
		return false
	}
	c.task.Cancel()
	c.logger.Info("generation cancelled", "task", c.task.id)
	c.task = nil
	c.status = StatusIdle
	return true
}

// UploadFile is the placeholder for attaching context documents.
func (c *Controller) UploadFile() {
	c.logger.Info("upload file clicked", "status", c.status)
}

// FailureError wraps the last failure reason for callers that want an error.
func (c *Controller) FailureError() error {
	if c.status != StatusFailed {
		return nil
	}
	return &Error{Code: ErrGenerationFailed, Message: c.failure}
}
