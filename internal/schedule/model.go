package schedule

import (
	"fmt"
	"strings"
)

type ApplyPolicy string

const (
	// ApplyNone leaves the list untouched after a generation.
	ApplyNone    ApplyPolicy = "none"
	ApplyAppend  ApplyPolicy = "append"
	ApplyReplace ApplyPolicy = "replace"
)

func ParseApplyPolicy(raw string) (ApplyPolicy, error) {
	switch p := ApplyPolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return ApplyNone, nil
	case ApplyNone, ApplyAppend, ApplyReplace:
		return p, nil
	default:
		return "", fmt.Errorf("schedule: unknown apply policy %q", raw)
	}
}

// Model is the ordered event list. IDs are unique for the model's lifetime
// and an ID that has left the list is never handed out again.
type Model struct {
	events []Event
	issued map[string]bool
	ids    IDSource
}

func NewModel(ids IDSource) *Model {
	if ids == nil {
		ids = NewULIDSource()
	}
	m := &Model{ids: ids, issued: make(map[string]bool)}
	m.Seed()
	return m
}

// Seed resets the list to the demo set. IDs issued before the reset stay
// retired.
func (m *Model) Seed() {
	m.events = SeedEvents()
	for _, e := range m.events {
		m.issued[e.ID] = true
	}
}

// List returns the events in display order.
func (m *Model) List() []Event {
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *Model) Len() int {
	return len(m.events)
}

// Append validates the batch and adds it after the existing events. Missing
// or already issued IDs are replaced with fresh ones.
func (m *Model) Append(events ...Event) ([]Event, error) {
	if err := validateAll(events); err != nil {
		return nil, err
	}
	added := m.assignIDs(events)
	m.events = append(m.events, added...)
	return added, nil
}

// Replace swaps the whole list for events. On a validation error the list
// is unchanged.
func (m *Model) Replace(events []Event) ([]Event, error) {
	if err := validateAll(events); err != nil {
		return nil, err
	}
	m.events = m.assignIDs(events)
	return m.List(), nil
}

// Apply routes generated events through policy and reports how many landed.
func (m *Model) Apply(policy ApplyPolicy, events []Event) (int, error) {
	switch policy {
	case ApplyNone, "":
		return 0, nil
	case ApplyAppend:
		added, err := m.Append(events...)
		return len(added), err
	case ApplyReplace:
		if len(events) == 0 {
			return 0, nil
		}
		out, err := m.Replace(events)
		return len(out), err
	default:
		return 0, fmt.Errorf("schedule: unknown apply policy %q", policy)
	}
}

func (m *Model) assignIDs(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		e.Title = strings.TrimSpace(e.Title)
		id := strings.TrimSpace(e.ID)
		if id == "" || m.issued[id] {
			id = m.ids.NewID()
		}
		m.issued[id] = true
		e.ID = id
		out = append(out, e)
	}
	return out
}
