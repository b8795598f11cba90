package advisor

import (
	"github.com/fdg312/workout-helper/internal/ai"
)

// Entry is one workout log row flattened into a uniform shape, whichever
// schema it was read from. Lives only for the duration of one run.
type Entry struct {
	Date    string
	Workout string
	Notes   string
}

// Result states. Empty is a clean "nothing to analyze" outcome, not an error.
const (
	StateOK    = "ok"
	StateEmpty = "empty"
)

// Result is the outcome of one analyze run, shaped for the UI.
type Result struct {
	RunID        string       `json:"run_id"`
	State        string       `json:"state"`
	Mode         string       `json:"mode"`
	Tips         string       `json:"tips,omitempty"`
	NextWorkout  string       `json:"next_workout,omitempty"`
	Plan         []ai.PlanRow `json:"workout_plan,omitempty"`
	RowsAppended int          `json:"rows_appended"`
	Warning      string       `json:"warning,omitempty"`
}
