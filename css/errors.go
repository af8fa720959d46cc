package css

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("stylesheet parse error")
	// ErrEmptySelector is returned when selector text has no tokens at all.
	ErrEmptySelector = errors.New("empty selector")
	// ErrNotStylesheet is returned by Loader for binary files.
	ErrNotStylesheet = errors.New("not a stylesheet")
	// ErrCoercion is wrapped by every *CoercionError.
	ErrCoercion = errors.New("property coercion error")
)

// ParseError describes malformed stylesheet or selector text.
type ParseError struct {
	Source string // file name or other source identifier, may be empty
	Offset int    // byte offset of the offending fragment, -1 if unknown
	Text   string // offending fragment (trimmed)
	Reason string
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Text != "" {
		msg += " " + strconv.Quote(e.Text)
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("offset %d: %s", e.Offset, msg)
	}
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrParse) hold for any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CoercionError is returned by Properties accessors when the raw string cannot
// be interpreted as the requested type.
type CoercionError struct {
	Key   string
	Value string
	Want  string // requested type: "float", "int", "color", "alignment"...
	Err   error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("invalid %s value for key '%s': %q", e.Want, e.Key, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrCoercion) hold for any *CoercionError.
func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
