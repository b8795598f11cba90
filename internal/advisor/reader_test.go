package advisor

import (
	"fmt"
	"testing"
)

func TestExtractEntriesEmptyGrid(t *testing.T) {
	if got := ExtractEntries(nil, 10); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
	if got := ExtractEntries([][]string{}, 10); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestSchemaSelection(t *testing.T) {
	cases := []struct {
		name    string
		header  []string
		current bool
	}{
		{"canonical current", []string{"Week", "Date", "Day Type", "Exercise", "Set"}, true},
		{"case and whitespace insensitive", []string{" week ", "DATE", " day type", "EXERCISE ", "Set"}, true},
		{"order does not matter", []string{"Set", "Exercise", "Notes", "Day Type", "Date"}, true},
		{"partial overlap falls back to legacy", []string{"Date", "Day Type", "Exercise"}, false},
		{"legacy header", []string{"date", "type", "workout", "notes", "ai_output"}, false},
		{"garbage header", []string{"foo", "bar"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isCurrentSchema(headerIndex(tc.header)); got != tc.current {
				t.Errorf("isCurrentSchema(%v) = %v, want %v", tc.header, got, tc.current)
			}
		})
	}
}

func TestExtractCurrentSchemaScenario(t *testing.T) {
	grid := [][]string{
		{"Week", "Date", "Day Type", "Exercise", "Set"},
		{"1", "2024-01-01", "Push", "Bench", "1"},
		{"1", "2024-01-01", "AI Plan", "Tips", "-"},
	}

	entries := ExtractEntries(grid, 10)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Date != "2024-01-01" {
		t.Errorf("date = %q", e.Date)
	}
	if e.Workout != "Push: Bench (set 1)" {
		t.Errorf("workout = %q", e.Workout)
	}
	if e.Notes != "week 1" {
		t.Errorf("notes = %q", e.Notes)
	}
}

func TestExtractCurrentSkipsBlankAndAIRows(t *testing.T) {
	grid := [][]string{
		{"Week", "Date", "Day Type", "Exercise", "Set", "Weight (lbs)", "Reps", "Notes"},
		{"1", "2024-01-01", "", "Bench", "1"},            // no day type
		{"1", "2024-01-01", "Push", "", "1"},             // no exercise
		{"1", "2024-01-01", "ai_plan", "Squat", "1"},     // prior AI row, underscore form
		{"1", "2024-01-01", "AI PLAN", "Deadlift", "1"},  // prior AI row, any case
		{"2", "2024-01-02", "Pull", "Row", "", "", "", "felt strong"},
	}

	entries := ExtractEntries(grid, 10)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(entries), entries)
	}
	if entries[0].Workout != "Pull: Row" {
		t.Errorf("expected no set suffix when set is empty, got %q", entries[0].Workout)
	}
	if entries[0].Notes != "week 2 | felt strong" {
		t.Errorf("notes = %q", entries[0].Notes)
	}
}

func TestExtractCurrentShortRowsDegrade(t *testing.T) {
	grid := [][]string{
		{"Week", "Date", "Day Type", "Exercise", "Set", "Weight (lbs)", "Reps", "Notes"},
		{"", "2024-01-03", "Legs", "Squat"}, // short row: set/notes columns absent
	}

	entries := ExtractEntries(grid, 10)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Workout != "Legs: Squat" {
		t.Errorf("workout = %q", entries[0].Workout)
	}
	if entries[0].Notes != "" {
		t.Errorf("expected empty notes, got %q", entries[0].Notes)
	}
}

func TestExtractLegacyScenario(t *testing.T) {
	grid := [][]string{
		{"date", "type", "workout", "notes"},
		{"2024-01-01", "workout_log", "Push Day", "felt strong"},
		{"2024-01-02", "note", "n/a", "n/a"},
	}

	entries := ExtractEntries(grid, 10)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Date != "2024-01-01" || e.Workout != "Push Day" || e.Notes != "felt strong" {
		t.Errorf("unexpected entry %+v", e)
	}
}

func TestExtractUnrecognizedSchemaYieldsNothing(t *testing.T) {
	grid := [][]string{
		{"foo", "bar", "baz"},
		{"1", "2", "3"},
	}
	if got := ExtractEntries(grid, 10); len(got) != 0 {
		t.Errorf("expected zero entries for unrecognized schema, got %v", got)
	}
}

func TestExtractTailLimit(t *testing.T) {
	grid := [][]string{{"Week", "Date", "Day Type", "Exercise", "Set"}}
	for i := 1; i <= 15; i++ {
		grid = append(grid, []string{"1", fmt.Sprintf("2024-01-%02d", i), "Push", "Bench", "1"})
	}

	entries := ExtractEntries(grid, 10)
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	if entries[0].Date != "2024-01-06" {
		t.Errorf("expected tail to start at 2024-01-06, got %s", entries[0].Date)
	}
	if entries[9].Date != "2024-01-15" {
		t.Errorf("expected tail to end at 2024-01-15, got %s", entries[9].Date)
	}
}
