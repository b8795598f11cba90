package advisor

import (
	"time"

	"github.com/fdg312/workout-helper/internal/ai"
)

const (
	// planCategory tags rows this tool writes; the reader skips them.
	planCategory  = "AI Plan"
	legacyPlanTag = "ai_plan"

	// emptyPlanMarker fills the exercise column of the placeholder row
	// written when the model returns an empty plan, so the append step
	// is never a no-op.
	emptyPlanMarker = "No plan generated"

	// planColumnCount is the fixed width of plan rows:
	// week | date | day_type | exercise | set | weight_lbs | reps | notes
	planColumnCount = 8
)

// Accent text color for freshly appended plan rows.
const (
	accentRed   = 0.2
	accentGreen = 0.4
	accentBlue  = 0.8
)

// BuildSummaryRows shapes the tips/next-workout pair to whichever schema
// the destination header currently exposes. The schema is re-detected
// here, independently of the read step.
func BuildSummaryRows(header []string, now time.Time, tips, nextWorkout string) [][]string {
	stamp := now.Format("2006-01-02 15:04")

	if isCurrentSchema(headerIndex(header)) {
		return [][]string{
			{"", stamp, planCategory, "Tips", tips},
			{"", stamp, planCategory, "Next Workout", nextWorkout},
		}
	}
	return [][]string{
		{stamp, legacyPlanTag, "", tips, nextWorkout},
	}
}

// BuildPlanRows positionally maps plan rows to the eight fixed columns.
// An empty plan yields one deterministic placeholder row carrying the
// tips text, so something is always written.
func BuildPlanRows(plan []ai.PlanRow, tips string, now time.Time) [][]string {
	if len(plan) == 0 {
		return [][]string{
			{"", now.Format("2006-01-02"), planCategory, emptyPlanMarker, "", "", "", tips},
		}
	}

	rows := make([][]string, len(plan))
	for i, p := range plan {
		rows[i] = []string{p.Week, p.Date, p.DayType, p.Exercise, p.Set, p.WeightLbs, p.Reps, p.Notes}
	}
	return rows
}
