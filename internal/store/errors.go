// Package store implements the in-memory document store: the table of
// resume documents, the current-document pointer, and every mutation
// operation defined on them.
package store

import (
	"fmt"

	"github.com/jonathan/resume-workspace/internal/types"
)

// NotFoundError indicates a referenced document id does not exist in the
// store. Every write targeting a missing document returns this error;
// read paths degrade to defaults instead (see the projection package).
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "document not found: no current document"
	}
	return fmt.Sprintf("document not found: %s", e.ID)
}

// IndexOutOfRangeError indicates an entry index outside the section's
// bounds. This is a caller/store desync and fails fast rather than
// silently growing or ignoring.
type IndexOutOfRangeError struct {
	Section types.Section
	Index   int
	Len     int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for %s (len %d)", e.Index, e.Section, e.Len)
}

// InvalidSectionError indicates an operation addressed a section that does
// not support it (for example adding an entry to the skills record).
type InvalidSectionError struct {
	Section types.Section
	Op      string
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("section %s does not support %s", e.Section, e.Op)
}

// UnknownFieldError indicates a field tag that no entry of the section
// carries.
type UnknownFieldError struct {
	Section types.Section
	Field   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q for section %s", e.Field, e.Section)
}

// InvalidDirectionError indicates a move direction other than up or down.
type InvalidDirectionError struct {
	Direction types.MoveDirection
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("invalid move direction %q", e.Direction)
}

// InvalidStateError indicates a wholesale state replacement that violates
// the store's invariants (duplicate ids or a dangling current pointer).
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid workspace state: %s", e.Message)
}
