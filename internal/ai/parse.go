package ai

import (
	"encoding/json"
	"strconv"
	"strings"
)

// decodeLoose decodes a model reply that is expected to be JSON but may
// arrive wrapped in markdown code fences. Direct decode first; on failure
// strip the fences and retry once. A second failure propagates.
func decodeLoose(content string, v any) error {
	text := strings.TrimSpace(content)
	if text == "" {
		text = "{}"
	}
	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return json.Unmarshal([]byte(strings.TrimSpace(cleaned)), v)
}

// NormalizeKey lower-cases a plan column name, collapses runs of
// non-alphanumeric characters into single underscores, and trims
// leading/trailing underscores: "Weight (lbs)" → "weight_lbs".
func NormalizeKey(key string) string {
	lowered := strings.ToLower(strings.TrimSpace(key))

	var b strings.Builder
	pendingSep := false
	for _, r := range lowered {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizePlan converts the dynamically-shaped workout_plan array into
// strict PlanRows. Non-mapping elements are dropped, keys are normalized,
// values coerced to trimmed strings, and rows without a day type or an
// exercise are discarded. Order is preserved.
func normalizePlan(raw []any) []PlanRow {
	rows := make([]PlanRow, 0, len(raw))
	for _, el := range raw {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}

		fields := make(map[string]string, len(m))
		for k, v := range m {
			fields[NormalizeKey(k)] = coerceString(v)
		}

		row := PlanRow{
			Week:      fields["week"],
			Date:      fields["date"],
			DayType:   fields["day_type"],
			Exercise:  fields["exercise"],
			Set:       fields["set"],
			WeightLbs: fields["weight_lbs"],
			Reps:      fields["reps"],
			Notes:     fields["notes"],
		}
		if row.DayType == "" || row.Exercise == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(raw))
	}
}
