package prompt

import (
	"errors"
	"fmt"
)

var (
	ErrNotANumber    = errors.New("not a whole number")
	ErrNegative      = errors.New("must not be negative")
	ErrTooLarge      = errors.New("too large")
	ErrInvalidAnswer = errors.New("answer must be 'yes' or 'no'")
)

// InputError describes a rejected answer to one of the numeric prompts.
type InputError struct {
	Field string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
