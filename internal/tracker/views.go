package tracker

import "tasktracker/internal/models"

// ViewTask is a task as rendered in a view, paired with its index in the
// canonical list. Drag gestures address canonical indices, so a filtered view
// must still know where each task really lives.
type ViewTask struct {
	models.Task
	Index  int  `json:"index"`
	Exempt bool `json:"exempt,omitempty"`
}

// Views is the derived pair of lists handed to rendering.
type Views struct {
	Todos         []ViewTask       `json:"todos"`
	Completed     []ViewTask       `json:"completed"`
	Selection     models.Selection `json:"selection"`
	InProgress    bool             `json:"in_progress"`
	ShowCompleted bool             `json:"show_completed"`

	// Canonical list lengths, needed to address a drop past the last
	// visible task.
	TodoCount      int `json:"todo_count"`
	CompletedCount int `json:"completed_count"`
	Total          int `json:"total"`
}

// DeriveViews recomputes both views from the canonical collection and the
// current preferences. Nothing is cached, so calling it twice on the same
// input yields equal results.
func DeriveViews(c models.TaskCollection, prefs models.Preferences) Views {
	r, filtering := prefs.Selection.Range()

	todos := annotate(c.Todos.Items, visible(c.Todos.Items, prefs.Selection, prefs.InProgress))
	if prefs.InProgress && filtering && len(todos) > 0 && todos[0].Index == 0 {
		todos[0].Exempt = !r.Contains(todos[0].Duration)
	}

	return Views{
		Todos:         todos,
		Completed:     annotate(c.Completed.Items, visible(c.Completed.Items, prefs.Selection, false)),
		Selection:     prefs.Selection,
		InProgress:    prefs.InProgress,
		ShowCompleted:  prefs.ShowCompleted,
		TodoCount:      c.Todos.Len(),
		CompletedCount: c.Completed.Len(),
		Total:          c.Len(),
	}
}

func annotate(items []models.Task, indices []int) []ViewTask {
	out := make([]ViewTask, len(indices))
	for n, i := range indices {
		out[n] = ViewTask{Task: items[i], Index: i}
	}
	return out
}

// Tasks strips the view annotations.
func Tasks(view []ViewTask) []models.Task {
	out := make([]models.Task, len(view))
	for i, vt := range view {
		out[i] = vt.Task
	}
	return out
}
