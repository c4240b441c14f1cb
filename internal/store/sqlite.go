package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tasktracker/internal/models"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at dbPath and brings its schema up to date.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadCollection reads both lists ordered by position.
func (s *SQLiteStore) LoadCollection(ctx context.Context) (models.TaskCollection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, list_key, title, notes, duration, created_at
		FROM tasks ORDER BY list_key, position ASC
	`)
	if err != nil {
		return models.TaskCollection{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	defer rows.Close()

	var c models.TaskCollection
	for rows.Next() {
		var (
			task models.Task
			key  models.ListKey
		)

		err := rows.Scan(
			&task.ID,
			&key,
			&task.Title,
			&task.Notes,
			&task.Duration,
			&task.CreatedAt,
		)
		if err != nil {
			return models.TaskCollection{}, fmt.Errorf("failed to scan task: %w", err)
		}

		list, ok := c.List(key)
		if !ok {
			return models.TaskCollection{}, fmt.Errorf("task %s stored in unknown list %q", task.ID, key)
		}
		list.Items = append(list.Items, task)
	}

	return c, rows.Err()
}

// SaveCollection writes the list membership and position of every task.
// The collection must hold exactly the tasks already stored.
func (s *SQLiteStore) SaveCollection(ctx context.Context, c models.TaskCollection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var stored int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&stored); err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	if stored != c.Len() {
		return fmt.Errorf("%w: stored %d, saving %d", ErrCountMismatch, stored, c.Len())
	}

	stmt, err := tx.PrepareContext(ctx, `UPDATE tasks SET list_key = ?, position = ?, updated_at = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	seen := make(map[string]struct{}, c.Len())
	for _, key := range models.ListKeys {
		list, _ := c.List(key)
		for i, task := range list.Items {
			if _, dup := seen[task.ID]; dup {
				return fmt.Errorf("%w: task %s appears twice", ErrCountMismatch, task.ID)
			}
			seen[task.ID] = struct{}{}

			result, err := stmt.ExecContext(ctx, key, i, now, task.ID)
			if err != nil {
				return fmt.Errorf("failed to update position: %w", err)
			}
			n, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read affected rows: %w", err)
			}
			if n != 1 {
				return fmt.Errorf("task %s: %w", task.ID, ErrNotFound)
			}
		}
	}

	return tx.Commit()
}

// ReplaceCollection discards every stored task and inserts c.
func (s *SQLiteStore) ReplaceCollection(ctx context.Context, c models.TaskCollection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, list_key, position, title, notes, duration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, key := range models.ListKeys {
		list, _ := c.List(key)
		for i, task := range list.Items {
			createdAt := task.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			_, err := stmt.ExecContext(ctx, task.ID, key, i, task.Title, task.Notes, task.Duration, createdAt, now)
			if err != nil {
				return fmt.Errorf("failed to insert task %s: %w", task.ID, err)
			}
		}
	}

	return tx.Commit()
}

// CountTasks returns the number of stored tasks.
func (s *SQLiteStore) CountTasks(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// LoadPreferences retrieves the saved view preferences.
// ErrNotFound is returned when none have been saved yet.
func (s *SQLiteStore) LoadPreferences(ctx context.Context) (models.Preferences, error) {
	var (
		p         models.Preferences
		selection string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT selection, in_progress, show_completed FROM preferences WHERE id = 1
	`).Scan(&selection, &p.InProgress, &p.ShowCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Preferences{}, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return models.Preferences{}, fmt.Errorf("failed to get preferences: %w", err)
	}

	p.Selection, err = models.ParseSelection(selection)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to parse stored selection: %w", err)
	}

	return p, nil
}

// SavePreferences stores the view preferences.
func (s *SQLiteStore) SavePreferences(ctx context.Context, p models.Preferences) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (id, selection, in_progress, show_completed, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			selection = excluded.selection,
			in_progress = excluded.in_progress,
			show_completed = excluded.show_completed,
			updated_at = excluded.updated_at
	`, p.Selection.String(), p.InProgress, p.ShowCompleted, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
