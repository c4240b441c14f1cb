package models

import "testing"

func TestListKey_Valid(t *testing.T) {
	tests := []struct {
		key      ListKey
		expected bool
	}{
		{key: ListTodos, expected: true},
		{key: ListCompleted, expected: true},
		{key: "", expected: false},
		{key: "Todos", expected: false},
		{key: "archive", expected: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := tt.key.Valid(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTaskCollection_List(t *testing.T) {
	c := TaskCollection{
		Todos:     TaskList{Items: []Task{{ID: "a"}}},
		Completed: TaskList{Items: []Task{{ID: "b"}, {ID: "c"}}},
	}

	todos, ok := c.List(ListTodos)
	if !ok || todos.Len() != 1 {
		t.Fatalf("expected todos with 1 item, got %v %v", todos, ok)
	}
	completed, ok := c.List(ListCompleted)
	if !ok || completed.Len() != 2 {
		t.Fatalf("expected completed with 2 items, got %v %v", completed, ok)
	}
	if _, ok := c.List("archive"); ok {
		t.Error("expected unknown list to be reported missing")
	}
	if c.Len() != 3 {
		t.Errorf("expected total of 3, got %d", c.Len())
	}
}

func TestTaskCollection_CloneIsIndependent(t *testing.T) {
	c := TaskCollection{
		Todos: TaskList{Items: []Task{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}},
	}

	clone := c.Clone()
	clone.Todos.Items[0].Title = "changed"
	clone.Completed.Items = append(clone.Completed.Items, Task{ID: "c"})

	if c.Todos.Items[0].Title != "A" {
		t.Errorf("expected original title to be kept, got %q", c.Todos.Items[0].Title)
	}
	if c.Completed.Len() != 0 {
		t.Errorf("expected original completed list to stay empty, got %d", c.Completed.Len())
	}
}
