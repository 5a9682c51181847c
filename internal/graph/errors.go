package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIDFormat is returned by ParseID for tokens outside the
	// <kind>_<digits> grammar.
	ErrInvalidIDFormat = errors.New("invalid node id format")

	// ErrStoreUnavailable marks a failure of the entity store. It aborts the
	// whole build.
	ErrStoreUnavailable = errors.New("entity store unavailable")
)

// StoreError wraps an entity store failure with the read that failed.
// Code is a backend specific error code (for example a SQLSTATE), if known.
type StoreError struct {
	Op   string
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s): %v", ErrStoreUnavailable, e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }
