package models

// ListKey names one of the two task lists.
type ListKey string

const (
	ListTodos     ListKey = "todos"
	ListCompleted ListKey = "completed"
)

// ListKeys holds the list keys in display order.
var ListKeys = []ListKey{ListTodos, ListCompleted}

// Valid reports whether k is one of the known list keys.
func (k ListKey) Valid() bool {
	return k == ListTodos || k == ListCompleted
}

// TaskList is an ordered sequence of tasks. Visual order is slice order.
type TaskList struct {
	Items []Task `json:"items"`
}

// Len returns the number of tasks in the list.
func (l TaskList) Len() int {
	return len(l.Items)
}

// TaskCollection holds the pending and completed lists. It is the canonical
// state of a session.
type TaskCollection struct {
	Todos     TaskList `json:"todos"`
	Completed TaskList `json:"completed"`
}

// List returns a pointer to the list stored under key.
func (c *TaskCollection) List(key ListKey) (*TaskList, bool) {
	switch key {
	case ListTodos:
		return &c.Todos, true
	case ListCompleted:
		return &c.Completed, true
	default:
		return nil, false
	}
}

// Len returns the total number of tasks across both lists.
func (c TaskCollection) Len() int {
	return c.Todos.Len() + c.Completed.Len()
}

// Clone returns a copy that shares no backing arrays with c.
func (c TaskCollection) Clone() TaskCollection {
	return TaskCollection{
		Todos:     TaskList{Items: cloneTasks(c.Todos.Items)},
		Completed: TaskList{Items: cloneTasks(c.Completed.Items)},
	}
}

func cloneTasks(in []Task) []Task {
	out := make([]Task, len(in))
	copy(out, in)
	return out
}

// Location addresses a position within one list.
type Location struct {
	ListKey ListKey `json:"list"`
	Index   int     `json:"index"`
}

// Move describes one resolved drag gesture. A nil Destination means the task
// was dropped outside every list.
type Move struct {
	Source      Location  `json:"source"`
	Destination *Location `json:"destination"`
}
