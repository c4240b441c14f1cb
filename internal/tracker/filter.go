package tracker

import "tasktracker/internal/models"

// ApplyFilter derives the visible todo and completed lists for sel.
//
// With SelectionNone both lists pass through. Otherwise each list keeps, in
// order, the tasks whose duration falls in the selected range. When
// progressExempt is set the first pending task is kept regardless of its
// duration, since it is the task being worked on. The completed list has no
// such exemption.
//
// The collection is only read; callers may hold on to the returned slices but
// must not modify them.
func ApplyFilter(c models.TaskCollection, sel models.Selection, progressExempt bool) (todoView, completedView []models.Task) {
	if _, ok := sel.Range(); !ok {
		return passthrough(c.Todos.Items), passthrough(c.Completed.Items)
	}

	todoView = pick(c.Todos.Items, visible(c.Todos.Items, sel, progressExempt))
	completedView = pick(c.Completed.Items, visible(c.Completed.Items, sel, false))
	return todoView, completedView
}

// visible returns the indices of items shown under sel, in list order.
func visible(items []models.Task, sel models.Selection, keepFirst bool) []int {
	r, ok := sel.Range()
	out := make([]int, 0, len(items))
	for i, task := range items {
		if !ok || (keepFirst && i == 0) || r.Contains(task.Duration) {
			out = append(out, i)
		}
	}
	return out
}

func pick(items []models.Task, indices []int) []models.Task {
	out := make([]models.Task, len(indices))
	for n, i := range indices {
		out[n] = items[i]
	}
	return out
}

func passthrough(items []models.Task) []models.Task {
	if items == nil {
		return []models.Task{}
	}
	return items
}
