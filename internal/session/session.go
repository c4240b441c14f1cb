// Package session owns the canonical task collection for one running tracker
// and serialises every event that reads or changes it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"tasktracker/internal/models"
	"tasktracker/internal/store"
	"tasktracker/internal/tracker"
)

// Snapshot is a consistent read of the session state.
type Snapshot struct {
	Tasks       models.TaskCollection
	Preferences models.Preferences
	Views       tracker.Views
}

// Session holds the canonical collection and view preferences. Every change
// is persisted before it becomes visible, so a failed write leaves the
// session as it was.
type Session struct {
	mu     sync.Mutex
	store  store.Store
	logger *log.Logger
	tasks  models.TaskCollection
	prefs  models.Preferences
}

// Options configures Open.
type Options struct {
	// Seed fills an empty store. Nil leaves it empty.
	Seed func() (models.TaskCollection, error)
	// Defaults apply when the store has no saved preferences.
	Defaults models.Preferences
	Logger   *log.Logger
}

// Open loads the session state from st, seeding it first when it is empty.
func Open(ctx context.Context, st store.Store, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	count, err := st.CountTasks(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 && opts.Seed != nil {
		seeded, err := opts.Seed()
		if err != nil {
			return nil, fmt.Errorf("seed tasks: %w", err)
		}
		if err := st.ReplaceCollection(ctx, seeded); err != nil {
			return nil, err
		}
		logger.Info("seeded empty task store", "todos", seeded.Todos.Len(), "completed", seeded.Completed.Len())
	}

	tasks, err := st.LoadCollection(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := st.LoadPreferences(ctx)
	if errors.Is(err, store.ErrNotFound) {
		prefs = opts.Defaults
	} else if err != nil {
		return nil, err
	}

	logger.Debug("session opened", "tasks", tasks.Len(), "selection", prefs.Selection, "in_progress", prefs.InProgress)
	return &Session{
		store:  st,
		logger: logger,
		tasks:  tasks,
		prefs:  prefs,
	}, nil
}

// Drop applies one resolved drag gesture. Cancelled and unchanged outcomes
// are not written; a rejected move returns an error wrapping
// tracker.ErrInvalidLocation and changes nothing.
func (s *Session) Drop(ctx context.Context, mv models.Move) (tracker.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, outcome, err := tracker.ApplyMove(s.tasks, mv)
	if err != nil {
		s.logger.Warn("move rejected", "source", mv.Source, "destination", *mv.Destination, "err", err)
		return outcome, err
	}
	if outcome != tracker.OutcomeMoved {
		s.logger.Debug("move skipped", "outcome", outcome, "source", mv.Source)
		return outcome, nil
	}

	if err := s.store.SaveCollection(ctx, next); err != nil {
		s.logger.Error("persisting move failed", "source", mv.Source, "destination", *mv.Destination, "err", err)
		return outcome, fmt.Errorf("save collection: %w", err)
	}
	s.tasks = next

	s.logger.Info("move applied", "from", mv.Source.ListKey, "from_index", mv.Source.Index, "to", mv.Destination.ListKey, "to_index", mv.Destination.Index)
	return outcome, nil
}

// SetSelection changes the active duration filter.
func (s *Session) SetSelection(ctx context.Context, sel models.Selection) error {
	return s.updatePreferences(ctx, func(p *models.Preferences) { p.Selection = sel })
}

// SetInProgress marks whether the first pending task is being worked on.
func (s *Session) SetInProgress(ctx context.Context, inProgress bool) error {
	return s.updatePreferences(ctx, func(p *models.Preferences) { p.InProgress = inProgress })
}

// SetShowCompleted toggles the completed list.
func (s *Session) SetShowCompleted(ctx context.Context, show bool) error {
	return s.updatePreferences(ctx, func(p *models.Preferences) { p.ShowCompleted = show })
}

func (s *Session) updatePreferences(ctx context.Context, update func(*models.Preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.prefs
	update(&next)
	if next == s.prefs {
		return nil
	}

	if err := s.store.SavePreferences(ctx, next); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	s.prefs = next

	s.logger.Info("preferences updated", "selection", next.Selection, "in_progress", next.InProgress, "show_completed", next.ShowCompleted)
	return nil
}

// Snapshot returns the current state with freshly derived views.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Tasks:       s.tasks.Clone(),
		Preferences: s.prefs,
		Views:       tracker.DeriveViews(s.tasks, s.prefs),
	}
}
