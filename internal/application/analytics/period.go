// Package analytics implements the sales analytics aggregation engine.
//
// Every function here is a pure computation over an in-memory slice of
// sales and an inclusive time window: no I/O, no shared state, no side
// effects. The service layer owns loading the sales and caching the
// resulting snapshot.
package analytics

import (
	"time"

	"github.com/kibetdev/salespulse-api/internal/domain/enum"
)

// Period is an inclusive [Start, End] time window used to filter sales.
// An inverted window (End before Start) is legal and matches nothing.
type Period struct {
	Kind  enum.PeriodKind `json:"kind"`
	Start time.Time       `json:"start"`
	End   time.Time       `json:"end"`
}

// Duration returns End - Start. Negative for an inverted window.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// ComputePeriod resolves a named period kind to explicit bounds relative to
// now. Day spans midnight to 23:59:59.999, week starts Monday, month and
// year follow the calendar. For custom, a missing bound falls back to the
// current month's corresponding bound so the window is never undefined.
func ComputePeriod(kind enum.PeriodKind, now time.Time, customStart, customEnd *time.Time) Period {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Millisecond)

	switch kind {
	case enum.PeriodDay:
		return Period{
			Kind:  kind,
			Start: today,
			End:   today.AddDate(0, 0, 1).Add(-time.Millisecond),
		}
	case enum.PeriodWeek:
		// Monday-based week: shift Sunday (0) back six days, others back
		// weekday-1 days.
		offset := (int(now.Weekday()) + 6) % 7
		weekStart := today.AddDate(0, 0, -offset)
		return Period{
			Kind:  kind,
			Start: weekStart,
			End:   weekStart.AddDate(0, 0, 7).Add(-time.Millisecond),
		}
	case enum.PeriodYear:
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Period{
			Kind:  kind,
			Start: yearStart,
			End:   yearStart.AddDate(1, 0, 0).Add(-time.Millisecond),
		}
	case enum.PeriodCustom:
		start := monthStart
		end := monthEnd
		if customStart != nil {
			start = *customStart
		}
		if customEnd != nil {
			end = *customEnd
		}
		return Period{Kind: kind, Start: start, End: end}
	default: // enum.PeriodMonth
		return Period{Kind: enum.PeriodMonth, Start: monthStart, End: monthEnd}
	}
}

// PreviousPeriod derives the comparison window by shifting both bounds
// backward by exactly the period's duration. This is a pure time shift, not
// a calendar shift: the previous window always has the same length as the
// current one, even for irregular custom ranges.
func PreviousPeriod(p Period) Period {
	d := p.Duration()
	return Period{
		Kind:  p.Kind,
		Start: p.Start.Add(-d),
		End:   p.End.Add(-d),
	}
}
