package engine

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update or toggle targets an id that is
// not present in the collection. Deletes of missing ids are silent no-ops.
var ErrNotFound = errors.New("not found")

// ValidationError reports a mutation payload that failed a required-field
// constraint. No state change occurs when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
