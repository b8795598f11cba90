package advisor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/fdg312/workout-helper/internal/ai"
	"github.com/fdg312/workout-helper/internal/config"
	"github.com/fdg312/workout-helper/internal/sheets"
)

// SheetGateway is the slice of the Sheets client the pipeline needs.
type SheetGateway interface {
	ReadGrid(ctx context.Context, tab string) ([][]string, error)
	ReadHeader(ctx context.Context, tab string) ([]string, error)
	Append(ctx context.Context, tab string, rows [][]string) (string, error)
	SheetID(ctx context.Context, tab string) (int64, error)
	SetTextColor(ctx context.Context, sheetID, startRow, endRow, cols int64, red, green, blue float64) error
}

// Service runs the read → advise → write pipeline. It holds no state
// between runs; every invocation re-reads and re-derives everything.
type Service struct {
	sheet    SheetGateway
	provider ai.Provider
	tab      string
	mode     string
	limit    int
}

func NewService(sheet SheetGateway, provider ai.Provider, cfg *config.Config) *Service {
	return &Service{
		sheet:    sheet,
		provider: provider,
		tab:      cfg.Google.SheetTab,
		mode:     cfg.AdviceMode,
		limit:    cfg.EntryLimit,
	}
}

// Analyze performs one full pipeline run. Zero qualifying entries is a
// clean short-circuit (State=empty), never an error.
func (s *Service) Analyze(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()

	grid, err := s.sheet.ReadGrid(ctx, s.tab)
	if err != nil {
		return nil, err
	}

	entries := ExtractEntries(grid, s.limit)
	if len(entries) == 0 {
		log.Printf("run %s: no qualifying workout rows in %q", runID, s.tab)
		return &Result{RunID: runID, State: StateEmpty, Mode: s.mode}, nil
	}
	log.Printf("run %s: extracted %d entries from %q", runID, len(entries), s.tab)

	aiEntries := make([]ai.Entry, len(entries))
	for i, e := range entries {
		aiEntries[i] = ai.Entry{Date: e.Date, Workout: e.Workout, Notes: e.Notes}
	}

	advice, err := s.provider.Advise(ctx, ai.AdviseRequest{Mode: s.mode, Entries: aiEntries})
	if err != nil {
		return nil, err
	}

	if s.mode == config.AdviceModeSummary {
		return s.writeSummary(ctx, runID, advice)
	}
	return s.writePlan(ctx, runID, advice)
}

func (s *Service) writeSummary(ctx context.Context, runID string, advice ai.AdviseResponse) (*Result, error) {
	header, err := s.sheet.ReadHeader(ctx, s.tab)
	if err != nil {
		return nil, err
	}

	rows := BuildSummaryRows(header, time.Now(), advice.Tips, advice.NextWorkout)
	if _, err := s.sheet.Append(ctx, s.tab, rows); err != nil {
		return nil, err
	}
	log.Printf("run %s: appended %d summary rows", runID, len(rows))

	return &Result{
		RunID:        runID,
		State:        StateOK,
		Mode:         s.mode,
		Tips:         advice.Tips,
		NextWorkout:  advice.NextWorkout,
		RowsAppended: len(rows),
	}, nil
}

func (s *Service) writePlan(ctx context.Context, runID string, advice ai.AdviseResponse) (*Result, error) {
	rows := BuildPlanRows(advice.Plan, advice.Tips, time.Now())
	updatedRange, err := s.sheet.Append(ctx, s.tab, rows)
	if err != nil {
		return nil, err
	}
	log.Printf("run %s: appended %d plan rows at %s", runID, len(rows), updatedRange)

	result := &Result{
		RunID:        runID,
		State:        StateOK,
		Mode:         s.mode,
		Tips:         advice.Tips,
		Plan:         advice.Plan,
		RowsAppended: len(rows),
	}

	// Cosmetic; the data write stands even if recoloring fails.
	if err := s.recolorAppended(ctx, updatedRange); err != nil {
		log.Printf("run %s: WARNING: formatting appended rows failed: %v", runID, err)
		result.Warning = fmt.Sprintf("rows appended, but formatting failed: %v", err)
	}
	return result, nil
}

func (s *Service) recolorAppended(ctx context.Context, updatedRange string) error {
	sheetID, err := s.sheet.SheetID(ctx, s.tab)
	if err != nil {
		return err
	}
	startRow, endRow, err := sheets.ParseRangeRef(updatedRange)
	if err != nil {
		return err
	}
	return s.sheet.SetTextColor(ctx, sheetID, startRow, endRow, planColumnCount,
		accentRed, accentGreen, accentBlue)
}
