package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks an invalid configuration snapshot.
	ErrConfig = errors.New("carousel: invalid configuration")
	// ErrContentLookup marks a reference to a content index with no item behind it.
	ErrContentLookup = errors.New("carousel: content index out of range")
)

// ConfigError reports a snapshot field that cannot produce a valid track.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
	Err    error // optional cause, e.g. a *ContentLookupError
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("carousel: invalid %s (%v): %s", e.Field, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

func (e *ConfigError) Unwrap() error { return e.Err }

// ContentLookupError reports an index that has no matching item in the content list.
type ContentLookupError struct {
	Index  int
	Count  int
	Source string // "track", "clone" or "dots"
}

func (e *ContentLookupError) Error() string {
	return fmt.Sprintf("carousel: %s references content index %d, but only %d items were provided",
		e.Source, e.Index, e.Count)
}

// Is reports whether target is ErrContentLookup.
func (e *ContentLookupError) Is(target error) bool { return target == ErrContentLookup }
