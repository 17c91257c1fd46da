package schedule

import (
	"fmt"
	"strings"
	"time"
)

// startTimeLayout matches the "9:00 AM" form used across the product.
const startTimeLayout = "3:04 PM"

type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schedule: event %d: %s %s", e.Index, e.Field, e.Reason)
}

// ValidateEvent checks the fields a generated event must carry.
func ValidateEvent(e Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if start := strings.TrimSpace(e.StartTime); start != "" {
		if _, err := time.Parse(startTimeLayout, start); err != nil {
			return &ValidationError{Field: "start_time", Reason: fmt.Sprintf("%q is not in h:MM AM/PM form", start)}
		}
	}
	return nil
}

func validateAll(events []Event) error {
	for i, e := range events {
		if err := ValidateEvent(e); err != nil {
			verr := err.(*ValidationError)
			verr.Index = i
			return verr
		}
	}
	return nil
}
