package models

import (
	"fmt"
	"strings"
)

// FilterRange is an inclusive duration range in minutes.
type FilterRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether duration lies within the range.
func (r FilterRange) Contains(duration int) bool {
	return duration >= r.Min && duration <= r.Max
}

// Selection is the active duration filter.
type Selection int

const (
	SelectionNone Selection = iota
	SelectionShort
	SelectionMedium
	SelectionLong
)

// Selections holds every selection in the order the filter control lists them.
var Selections = []Selection{SelectionNone, SelectionShort, SelectionMedium, SelectionLong}

var selectionRanges = map[Selection]FilterRange{
	SelectionShort:  {Min: 1, Max: 30},
	SelectionMedium: {Min: 31, Max: 59},
	SelectionLong:   {Min: 60, Max: 120},
}

// Range returns the duration range for s. The second result is false when
// s does not filter.
func (s Selection) Range() (FilterRange, bool) {
	r, ok := selectionRanges[s]
	return r, ok
}

// String returns the selection name used in forms and JSON.
func (s Selection) String() string {
	switch s {
	case SelectionShort:
		return "short"
	case SelectionMedium:
		return "medium"
	case SelectionLong:
		return "long"
	default:
		return "none"
	}
}

// Label returns the human readable description of the selection.
func (s Selection) Label() string {
	r, ok := s.Range()
	if !ok {
		return "All durations"
	}
	return fmt.Sprintf("%d-%d min", r.Min, r.Max)
}

// MarshalText implements encoding.TextMarshaler.
func (s Selection) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Selection) UnmarshalText(text []byte) error {
	parsed, err := ParseSelection(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSelection parses a filter control value. Buckets may be given by
// number ("1", "2", "3") or by name.
func ParseSelection(value string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "none":
		return SelectionNone, nil
	case "1", "short":
		return SelectionShort, nil
	case "2", "medium":
		return SelectionMedium, nil
	case "3", "long":
		return SelectionLong, nil
	default:
		return SelectionNone, fmt.Errorf("unknown duration filter %q", value)
	}
}

// Preferences holds the per-session view state around the two lists.
type Preferences struct {
	Selection     Selection `json:"selection"`
	InProgress    bool      `json:"in_progress"`
	ShowCompleted bool      `json:"show_completed"`
}
