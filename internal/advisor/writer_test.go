package advisor

import (
	"reflect"
	"testing"
	"time"

	"github.com/fdg312/workout-helper/internal/ai"
)

var writerNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func TestBuildSummaryRowsCurrentSchema(t *testing.T) {
	header := []string{"Week", "Date", "Day Type", "Exercise", "Set"}
	rows := BuildSummaryRows(header, writerNow, "rest more", "Pull day")

	want := [][]string{
		{"", "2024-06-01 09:30", "AI Plan", "Tips", "rest more"},
		{"", "2024-06-01 09:30", "AI Plan", "Next Workout", "Pull day"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestBuildSummaryRowsLegacySchema(t *testing.T) {
	header := []string{"date", "type", "workout", "notes", "ai_output"}
	rows := BuildSummaryRows(header, writerNow, "rest more", "Pull day")

	want := [][]string{
		{"2024-06-01 09:30", "ai_plan", "", "rest more", "Pull day"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestBuildPlanRows(t *testing.T) {
	plan := []ai.PlanRow{
		{Week: "1", Date: "2024-06-03", DayType: "Push", Exercise: "Bench", Set: "1", WeightLbs: "135", Reps: "5", Notes: "pause reps"},
		{Week: "1", Date: "2024-06-03", DayType: "Push", Exercise: "Dips", Set: "1", WeightLbs: "", Reps: "10", Notes: ""},
	}

	rows := BuildPlanRows(plan, "ignored in plan rows", writerNow)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"1", "2024-06-03", "Push", "Bench", "1", "135", "5", "pause reps"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row 0 = %v, want %v", rows[0], want)
	}
	for i, row := range rows {
		if len(row) != planColumnCount {
			t.Errorf("row %d has %d columns, want %d", i, len(row), planColumnCount)
		}
	}
}

func TestBuildPlanRowsEmptyPlanPlaceholder(t *testing.T) {
	rows := BuildPlanRows(nil, "keep hydrating", writerNow)
	if len(rows) != 1 {
		t.Fatalf("expected exactly one placeholder row, got %d", len(rows))
	}

	row := rows[0]
	if row[1] != "2024-06-01" {
		t.Errorf("expected today's date, got %q", row[1])
	}
	if row[2] != "AI Plan" {
		t.Errorf("expected AI Plan category, got %q", row[2])
	}
	if row[3] != emptyPlanMarker {
		t.Errorf("expected marker, got %q", row[3])
	}
	if row[7] != "keep hydrating" {
		t.Errorf("expected tips in notes column, got %q", row[7])
	}
}
