package generation

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrEmptyPrompt          ErrorCode = "EMPTY_PROMPT"
	ErrBusy                 ErrorCode = "BUSY"
	ErrUnacknowledged       ErrorCode = "UNACKNOWLEDGED_FAILURE"
	ErrNothingToAcknowledge ErrorCode = "NOTHING_TO_ACKNOWLEDGE"
	ErrGenerationFailed     ErrorCode = "GENERATION_FAILED"
)

// Error is a declined transition or a failed generation. Declined
// transitions leave the controller untouched.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err is a generation error carrying code.
func Is(err error, code ErrorCode) bool {
	var gErr *Error
	if errors.As(err, &gErr) {
		return gErr.Code == code
	}
	return false
}
