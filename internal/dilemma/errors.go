package dilemma

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptionSpecified is returned when a builder setter is not
	// allowed in the builder's mode.
	ErrInvalidOptionSpecified = errors.New("invalid option specified")

	// ErrInvalidOptionValueSpecified is returned when a setter is allowed but
	// the value itself is unusable (empty label, empty range).
	ErrInvalidOptionValueSpecified = errors.New("invalid option value specified")

	ErrInvalidRange         = errors.New("min value must be less than max value")
	ErrLabelIndexOutOfRange = errors.New("label index out of range")
	ErrUnknownMode          = errors.New("unknown builder mode")
	ErrUnknownChoice        = errors.New("unknown choice")
)

// OptionError describes a rejected builder setter call.
type OptionError struct {
	Mode   Mode
	Option string
	Err    error // ErrInvalidOptionSpecified or ErrInvalidOptionValueSpecified
	Detail string
}

func (e *OptionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s in %s mode: %s", e.Err, e.Option, e.Mode, e.Detail)
	}
	return fmt.Sprintf("%v: %s in %s mode", e.Err, e.Option, e.Mode)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
