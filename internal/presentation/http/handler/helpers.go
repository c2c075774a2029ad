package handler

import "time"

// parseTimeParam accepts either a full RFC3339 instant or a bare
// "YYYY-MM-DD" date. Returns nil for an empty or unparseable value, so a
// bad query parameter degrades to the default window instead of failing.
func parseTimeParam(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}

// endOfDay pushes a date-only bound to the last millisecond of its day so
// that an inclusive filter covers the whole day
func endOfDay(t time.Time) time.Time {
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return t
	}
	return t.AddDate(0, 0, 1).Add(-time.Millisecond)
}
