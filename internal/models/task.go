package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Task represents a single task on the tracker.
// Only Duration is read by the move and filter engines; every other field is
// carried along untouched.
type Task struct {
	ID        string    `json:"id" toml:"id"`
	Title     string    `json:"title" toml:"title"`
	Notes     string    `json:"notes,omitempty" toml:"notes"`
	Duration  int       `json:"duration" toml:"duration"` // minutes
	CreatedAt time.Time `json:"created_at" toml:"-"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("id is required")
	}

	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title is required")
	}

	if t.Duration < 0 {
		return errors.New("duration must not be negative")
	}

	if len(t.Notes) > 255 {
		return errors.New("notes must be 255 characters or fewer")
	}

	return nil
}

// DurationLabel formats the duration for display, e.g. "45m", "2h" or "1h30m".
func (t Task) DurationLabel() string {
	if t.Duration <= 0 {
		return "-"
	}
	hours, minutes := t.Duration/60, t.Duration%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}
