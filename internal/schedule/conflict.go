// Package schedule holds the pure conflict check used by the enrollment
// service. It has no store access and no side effects.
package schedule

import (
	"time"

	"github.com/ds124wfegd/activity-registration/pkg/datetime"
)

// Interval is a half-open [Start, End) activity time slot.
type Interval struct {
	Start time.Time
	End   time.Time
}

// HasConflict reports whether the candidate slot overlaps any of the existing
// slots on the same calendar day. The check is fail-fast: the first
// overlapping pair decides. Slots on different calendar days never conflict,
// even when the timestamps are minutes apart across midnight.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, slot := range existing {
		if !datetime.SameDay(slot.Start, candidate.Start) {
			continue
		}
		if candidate.Start.Before(slot.End) && slot.Start.Before(candidate.End) {
			return true
		}
	}
	return false
}
