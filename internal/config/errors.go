package config

import (
	"errors"
	"fmt"
)

// ErrEmptyConfig is returned when the document parses to an empty or falsy
// value. The message is shown to the user as-is.
var ErrEmptyConfig = errors.New("Zły format pliku YAML!")

// ErrInvalidFormat is returned when the document is not a mapping of groups
// to mappings of devices.
var ErrInvalidFormat = errors.New("invalid config format")

// DuplicateKeyError reports a device key that appears more than once.
// Device state is keyed by device key alone, so duplicates would alias two
// rows to one state.
type DuplicateKeyError struct {
	Key         string
	FirstGroup  string
	SecondGroup string
	Line        int
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	if e.FirstGroup == e.SecondGroup {
		return fmt.Sprintf("duplicate device key %q in group %q (line %d)", e.Key, e.FirstGroup, e.Line)
	}
	return fmt.Sprintf("duplicate device key %q in groups %q and %q (line %d)",
		e.Key, e.FirstGroup, e.SecondGroup, e.Line)
}

// DuplicateGroupError reports a group name that appears more than once at
// the top level. Pages are keyed by group name, so the first group would be
// unreachable.
type DuplicateGroupError struct {
	Name      string
	FirstLine int
	Line      int
}

// Error implements the error interface
func (e *DuplicateGroupError) Error() string {
	return fmt.Sprintf("duplicate group %q (line %d, first defined on line %d)", e.Name, e.Line, e.FirstLine)
}

// formatError wraps ErrInvalidFormat with position information.
func formatError(line int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidFormat, line, fmt.Sprintf(format, args...))
}
