package sheets

import (
	"fmt"
	"regexp"
	"strconv"
)

// The append API reports the written range as "<tab>!A<start>:<col><end>".
// The tab name may contain "!" when quoted, so only the tail is matched.
var updatedRangeRe = regexp.MustCompile(`!A(\d+):[A-Z]+(\d+)$`)

// ParseRangeRef recovers the absolute 1-based start and end row numbers
// from an updated-range reference such as "Workouts!A12:H14".
func ParseRangeRef(ref string) (startRow, endRow int64, err error) {
	m := updatedRangeRe.FindStringSubmatch(ref)
	if m == nil {
		return 0, 0, fmt.Errorf("unexpected updated range %q", ref)
	}

	startRow, err = strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected updated range %q", ref)
	}
	endRow, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected updated range %q", ref)
	}
	if endRow < startRow {
		return 0, 0, fmt.Errorf("unexpected updated range %q", ref)
	}
	return startRow, endRow, nil
}
