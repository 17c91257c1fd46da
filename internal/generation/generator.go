package generation

import (
	"context"
	"time"

	"github.com/sandeepkv93/scheduleai/internal/schedule"
)

type Attachment struct {
	Name string
}

// Request is what a backend receives: the prompt plus optional documents.
type Request struct {
	Prompt      string
	Attachments []Attachment
}

// Generator turns a request into an ordered list of events.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]schedule.Event, error)
}

type GeneratorFunc func(ctx context.Context, req Request) ([]schedule.Event, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) ([]schedule.Event, error) {
	return f(ctx, req)
}

// SimulatedGenerator stands in for a backend round trip: it waits Delay and
// returns Events, which is empty unless set.
type SimulatedGenerator struct {
	Delay  time.Duration
	Events []schedule.Event
}

func (g SimulatedGenerator) Generate(ctx context.Context, _ Request) ([]schedule.Event, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if len(g.Events) == 0 {
		return nil, nil
	}
	out := make([]schedule.Event, len(g.Events))
	copy(out, g.Events)
	return out, nil
}
