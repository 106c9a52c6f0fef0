package rotation

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate accepts the canonical YYYY-MM-DD form. The empty string is the
// "no date" sentinel and reports ok=false, same as garbage input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// AddDays offsets a canonical date by n calendar days. The empty sentinel
// propagates unchanged, as does anything unparseable.
func AddDays(date string, n int) string {
	t, ok := ParseDate(date)
	if !ok {
		return ""
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// The recurring dormant-risk window: Jul 15 .. Sep 15, every year.
const (
	windowFromMonth = time.July
	windowFromDay   = 15
	windowToMonth   = time.September
	windowToDay     = 15
)

// OverlapsWindow reports whether the closed interval [start,end] touches the
// mid-July..mid-September window in any year the interval spans. Empty or
// unparseable endpoints never overlap.
func OverlapsWindow(start, end string) bool {
	s, ok := ParseDate(start)
	if !ok {
		return false
	}
	e, ok := ParseDate(end)
	if !ok {
		return false
	}
	if e.Before(s) {
		s, e = e, s
	}
	for y := s.Year(); y <= e.Year(); y++ {
		wFrom := time.Date(y, windowFromMonth, windowFromDay, 0, 0, 0, 0, time.UTC)
		wTo := time.Date(y, windowToMonth, windowToDay, 0, 0, 0, 0, time.UTC)
		if !s.After(wTo) && !e.Before(wFrom) {
			return true
		}
	}
	return false
}
