package store

import (
	"context"
	"errors"

	"tasktracker/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCountMismatch is returned when a saved collection does not hold
	// exactly the tasks already stored.
	ErrCountMismatch = errors.New("task count mismatch")
)

// Store defines the interface for data persistence operations.
type Store interface {
	// Collection operations
	LoadCollection(ctx context.Context) (models.TaskCollection, error)
	SaveCollection(ctx context.Context, c models.TaskCollection) error
	ReplaceCollection(ctx context.Context, c models.TaskCollection) error
	CountTasks(ctx context.Context) (int, error)

	// Preference operations
	LoadPreferences(ctx context.Context) (models.Preferences, error)
	SavePreferences(ctx context.Context, p models.Preferences) error

	// Lifecycle
	Close() error
}
