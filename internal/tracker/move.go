// Package tracker implements the move and filter rules for the two task lists.
package tracker

import (
	"errors"
	"fmt"

	"tasktracker/internal/models"
)

// ErrInvalidLocation is returned when a move addresses a list or index that
// does not exist.
var ErrInvalidLocation = errors.New("invalid location")

// LocationError describes which side of a move was rejected.
type LocationError struct {
	Side     string // "source" or "destination"
	Location models.Location
	Len      int
}

func (e *LocationError) Error() string {
	if !e.Location.ListKey.Valid() {
		return fmt.Sprintf("%s: unknown list %q", e.Side, e.Location.ListKey)
	}
	return fmt.Sprintf("%s: index %d out of range for %s (len %d)", e.Side, e.Location.Index, e.Location.ListKey, e.Len)
}

func (e *LocationError) Unwrap() error {
	return ErrInvalidLocation
}

// Outcome reports what ApplyMove did.
type Outcome int

const (
	OutcomeCancelled Outcome = iota // dropped outside every list
	OutcomeUnchanged                // dropped on its own position
	OutcomeMoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeMoved:
		return "moved"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ApplyMove relocates the task at mv.Source to mv.Destination and returns the
// resulting collection. The input collection is never modified. On error the
// input is returned as is.
//
// The destination index is read against the destination list after the task
// has been removed from the source, which is plain splice semantics: an index
// equal to that length appends.
func ApplyMove(c models.TaskCollection, mv models.Move) (models.TaskCollection, Outcome, error) {
	if mv.Destination == nil {
		return c, OutcomeCancelled, nil
	}
	src, dst := mv.Source, *mv.Destination

	if err := validateMove(c, src, dst); err != nil {
		return c, OutcomeCancelled, err
	}

	if src.ListKey == dst.ListKey && src.Index == dst.Index {
		return c.Clone(), OutcomeUnchanged, nil
	}

	next := c.Clone()
	from, _ := next.List(src.ListKey)
	task := from.Items[src.Index]
	from.Items = removeAt(from.Items, src.Index)

	to, _ := next.List(dst.ListKey)
	to.Items = insertAt(to.Items, dst.Index, task)

	return next, OutcomeMoved, nil
}

func validateMove(c models.TaskCollection, src, dst models.Location) error {
	from, ok := c.List(src.ListKey)
	if !ok {
		return &LocationError{Side: "source", Location: src}
	}
	if src.Index < 0 || src.Index >= from.Len() {
		return &LocationError{Side: "source", Location: src, Len: from.Len()}
	}

	to, ok := c.List(dst.ListKey)
	if !ok {
		return &LocationError{Side: "destination", Location: dst}
	}
	limit := to.Len()
	if dst.ListKey == src.ListKey {
		limit--
	}
	if dst.Index < 0 || dst.Index > limit {
		return &LocationError{Side: "destination", Location: dst, Len: limit}
	}

	return nil
}

func removeAt(items []models.Task, i int) []models.Task {
	return append(items[:i], items[i+1:]...)
}

func insertAt(items []models.Task, i int, task models.Task) []models.Task {
	items = append(items, models.Task{})
	copy(items[i+1:], items[i:])
	items[i] = task
	return items
}
