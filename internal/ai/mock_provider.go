package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/fdg312/workout-helper/internal/config"
)

// MockProvider returns deterministic advice without any network call.
// Used for local runs and tests (AI_MODE=mock).
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Advise(ctx context.Context, req AdviseRequest) (AdviseResponse, error) {
	_ = ctx

	lastWorkout := "your last session"
	if len(req.Entries) > 0 {
		lastWorkout = req.Entries[len(req.Entries)-1].Workout
	}

	tips := fmt.Sprintf(
		"Mock advice: reviewed %d recent entries, last one was %q. "+
			"This is demo mode, not real coaching.",
		len(req.Entries), lastWorkout,
	)

	if req.Mode != config.AdviceModePlan {
		return AdviseResponse{
			Tips:        tips,
			NextWorkout: "Push: Bench Press 3x5, Overhead Press 3x8, Dips 3x10",
		}, nil
	}

	today := time.Now().Format("2006-01-02")
	return AdviseResponse{
		Tips: tips,
		Plan: []PlanRow{
			{Week: "1", Date: today, DayType: "Push", Exercise: "Bench Press", Set: "1", WeightLbs: "135", Reps: "5", Notes: "warm up first"},
			{Week: "1", Date: today, DayType: "Push", Exercise: "Bench Press", Set: "2", WeightLbs: "155", Reps: "5", Notes: ""},
			{Week: "1", Date: today, DayType: "Push", Exercise: "Overhead Press", Set: "1", WeightLbs: "85", Reps: "8", Notes: ""},
		},
	}, nil
}
