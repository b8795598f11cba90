package advisor

import (
	"fmt"
	"strings"
)

// Required header columns for the current sheet layout:
// Week | Date | Day Type | Exercise | Set | ... | Notes
// The check is all-or-nothing; partial overlap falls back to the legacy
// layout (date | type | workout | notes | ai_output).
var currentSchemaColumns = []string{"date", "day type", "exercise", "set"}

// Day types the tool itself writes; excluded on re-read so prior output
// never feeds back into the prompt.
var aiPlanDayTypes = map[string]bool{
	"ai plan": true,
	"ai_plan": true,
}

// headerIndex maps lower-cased, trimmed column names to zero-based positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

// cell reads a named column from a row; a missing column or a short row
// degrades to the empty string, never an error.
func cell(row []string, idx map[string]int, key string) string {
	pos, ok := idx[key]
	if !ok || len(row) <= pos {
		return ""
	}
	return row[pos]
}

func isCurrentSchema(idx map[string]int) bool {
	for _, col := range currentSchemaColumns {
		if _, ok := idx[col]; !ok {
			return false
		}
	}
	return true
}

// ExtractEntries filters and flattens a raw grid (row 0 = header) into at
// most limit entries, keeping the most recent qualifying rows in original
// order.
func ExtractEntries(grid [][]string, limit int) []Entry {
	if len(grid) == 0 {
		return nil
	}

	idx := headerIndex(grid[0])
	body := grid[1:]

	var entries []Entry
	if isCurrentSchema(idx) {
		entries = extractCurrent(body, idx)
	} else {
		entries = extractLegacy(body, idx)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

func extractCurrent(body [][]string, idx map[string]int) []Entry {
	entries := make([]Entry, 0, len(body))
	for _, row := range body {
		date := strings.TrimSpace(cell(row, idx, "date"))
		dayType := strings.TrimSpace(cell(row, idx, "day type"))
		exercise := strings.TrimSpace(cell(row, idx, "exercise"))
		setNum := strings.TrimSpace(cell(row, idx, "set"))
		week := strings.TrimSpace(cell(row, idx, "week"))
		sheetNotes := strings.TrimSpace(cell(row, idx, "notes"))

		// Ignore malformed/freeform trailing rows and prior AI rows.
		if dayType == "" || exercise == "" {
			continue
		}
		if aiPlanDayTypes[strings.ToLower(dayType)] {
			continue
		}

		workout := fmt.Sprintf("%s: %s", dayType, exercise)
		if setNum != "" {
			workout = fmt.Sprintf("%s (set %s)", workout, setNum)
		}

		notesParts := make([]string, 0, 2)
		if week != "" {
			notesParts = append(notesParts, fmt.Sprintf("week %s", week))
		}
		if sheetNotes != "" {
			notesParts = append(notesParts, sheetNotes)
		}

		entries = append(entries, Entry{
			Date:    date,
			Workout: workout,
			Notes:   strings.Join(notesParts, " | "),
		})
	}
	return entries
}

func extractLegacy(body [][]string, idx map[string]int) []Entry {
	entries := make([]Entry, 0, len(body))
	for _, row := range body {
		if strings.TrimSpace(cell(row, idx, "type")) != "workout_log" {
			continue
		}
		entries = append(entries, Entry{
			Date:    strings.TrimSpace(cell(row, idx, "date")),
			Workout: strings.TrimSpace(cell(row, idx, "workout")),
			Notes:   strings.TrimSpace(cell(row, idx, "notes")),
		})
	}
	return entries
}
