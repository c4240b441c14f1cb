package models

import (
	"encoding/json"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input    string
		expected Selection
		wantErr  bool
	}{
		{input: "", expected: SelectionNone},
		{input: "none", expected: SelectionNone},
		{input: "0", expected: SelectionNone},
		{input: "1", expected: SelectionShort},
		{input: "short", expected: SelectionShort},
		{input: " 2 ", expected: SelectionMedium},
		{input: "Medium", expected: SelectionMedium},
		{input: "3", expected: SelectionLong},
		{input: "long", expected: SelectionLong},
		{input: "4", wantErr: true},
		{input: "forever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSelection(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSelection_Range(t *testing.T) {
	tests := []struct {
		sel      Selection
		expected FilterRange
		ok       bool
	}{
		{sel: SelectionNone, ok: false},
		{sel: SelectionShort, expected: FilterRange{Min: 1, Max: 30}, ok: true},
		{sel: SelectionMedium, expected: FilterRange{Min: 31, Max: 59}, ok: true},
		{sel: SelectionLong, expected: FilterRange{Min: 60, Max: 120}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.sel.String(), func(t *testing.T) {
			got, ok := tt.sel.Range()
			if ok != tt.ok || got != tt.expected {
				t.Errorf("expected %v %v, got %v %v", tt.expected, tt.ok, got, ok)
			}
		})
	}
}

func TestFilterRange_ContainsIsInclusive(t *testing.T) {
	r := FilterRange{Min: 31, Max: 59}
	for d, expected := range map[int]bool{30: false, 31: true, 45: true, 59: true, 60: false} {
		if got := r.Contains(d); got != expected {
			t.Errorf("Contains(%d): expected %v, got %v", d, expected, got)
		}
	}
}

func TestSelection_JSON(t *testing.T) {
	prefs := Preferences{Selection: SelectionMedium, InProgress: true}

	data, err := json.Marshal(prefs)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"selection":"medium","in_progress":true,"show_completed":false}` {
		t.Errorf("unexpected json: %s", data)
	}

	var decoded Preferences
	if err := json.Unmarshal([]byte(`{"selection":"3"}`), &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Selection != SelectionLong {
		t.Errorf("expected long, got %v", decoded.Selection)
	}

	if err := json.Unmarshal([]byte(`{"selection":"9"}`), &decoded); err == nil {
		t.Error("expected error for unknown selection")
	}
}
