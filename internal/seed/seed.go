// Package seed builds the initial task collection for a new session.
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"

	"tasktracker/internal/models"
)

// IDGenerator returns unique identifiers for tasks that have none.
type IDGenerator func() string

type seedFile struct {
	Todos     []models.Task `toml:"todos"`
	Completed []models.Task `toml:"completed"`
}

// Load reads a TOML seed file:
//
//	[[todos]]
//	title = "Write report"
//	duration = 25
//
//	[[completed]]
//	id = "plan-week"
//	title = "Plan week"
//	duration = 60
func Load(path string) (models.TaskCollection, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.TaskCollection{}, fmt.Errorf("read seed: %w", err)
	}
	return Parse(content, nil)
}

// Parse decodes seed content. Tasks without an id get one from newID, or a
// random UUID when newID is nil.
func Parse(content []byte, newID IDGenerator) (models.TaskCollection, error) {
	if newID == nil {
		newID = uuid.NewString
	}

	var f seedFile
	if err := toml.Unmarshal(content, &f); err != nil {
		return models.TaskCollection{}, fmt.Errorf("decode seed toml: %w", err)
	}

	c := models.TaskCollection{
		Todos:     models.TaskList{Items: f.Todos},
		Completed: models.TaskList{Items: f.Completed},
	}
	if err := normalize(&c, newID); err != nil {
		return models.TaskCollection{}, err
	}
	return c, nil
}

// Default returns the demo collection used when no seed file is configured.
func Default() models.TaskCollection {
	c := models.TaskCollection{
		Todos: models.TaskList{Items: []models.Task{
			{Title: "Answer support inbox", Duration: 25},
			{Title: "Review pull requests", Duration: 45},
			{Title: "Write release notes", Duration: 20},
			{Title: "Refactor billing module", Duration: 110},
			{Title: "Prepare sprint demo", Duration: 55},
		}},
		Completed: models.TaskList{Items: []models.Task{
			{Title: "Stand-up", Duration: 15},
			{Title: "Pair on flaky test", Duration: 75},
		}},
	}
	// Default tasks are valid by construction.
	_ = normalize(&c, uuid.NewString)
	return c
}

func normalize(c *models.TaskCollection, newID IDGenerator) error {
	seen := make(map[string]models.ListKey)
	for _, key := range models.ListKeys {
		list, _ := c.List(key)
		for i := range list.Items {
			task := &list.Items[i]
			task.ID = strings.TrimSpace(task.ID)
			task.Title = strings.TrimSpace(task.Title)
			if task.ID == "" {
				task.ID = newID()
			}
			if err := task.Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", key, i, err)
			}
			if prev, dup := seen[task.ID]; dup {
				return fmt.Errorf("%s[%d]: %w: %q already used in %s", key, i, ErrDuplicateID, task.ID, prev)
			}
			seen[task.ID] = key
		}
	}
	return nil
}

// ErrDuplicateID is returned when two seeded tasks share an id.
var ErrDuplicateID = errors.New("duplicate task id")
