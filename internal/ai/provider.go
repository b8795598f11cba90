package ai

import (
	"context"
)

// Provider generates workout advice from recent log entries.
type Provider interface {
	Advise(ctx context.Context, req AdviseRequest) (AdviseResponse, error)
}

// Entry is one flattened workout log row, as extracted by the reader.
type Entry struct {
	Date    string `json:"date"`
	Workout string `json:"workout"`
	Notes   string `json:"notes"`
}

// PlanRow is one normalized row of a generated workout plan.
// All values are strings; the sheet stores them as raw text.
type PlanRow struct {
	Week      string `json:"week"`
	Date      string `json:"date"`
	DayType   string `json:"day_type"`
	Exercise  string `json:"exercise"`
	Set       string `json:"set"`
	WeightLbs string `json:"weight_lbs"`
	Reps      string `json:"reps"`
	Notes     string `json:"notes"`
}

// AdviseRequest carries the extracted entries and the output contract.
// Mode is config.AdviceModeSummary or config.AdviceModePlan.
type AdviseRequest struct {
	Mode    string
	Entries []Entry
}

// AdviseResponse holds the parsed model output. NextWorkout is set in
// summary mode, Plan in plan mode; Tips is set in both.
type AdviseResponse struct {
	Tips        string
	NextWorkout string
	Plan        []PlanRow
}
