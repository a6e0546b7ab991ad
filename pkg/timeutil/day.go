// Package timeutil provides the calendar-day arithmetic the tracker leans on:
// day-boundary comparisons, grouping keys, and recurrence scheduling.
package timeutil

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// DayKey returns the "YYYY-MM-DD" grouping key for t in local time.
func DayKey(t time.Time) string {
	return t.Local().Format(layoutISO)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Local().Location())
}

// EndOfDay returns the last nanosecond of t's local calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsToday reports whether t falls on the current local calendar day.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// IsOverdue reports whether t's calendar day is strictly before today's.
func IsOverdue(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return StartOfDay(t).Before(StartOfDay(time.Now()))
}

// WithinDays reports whether t falls between today and today+days, inclusive,
// at day granularity.
func WithinDays(t time.Time, days int) bool {
	if t.IsZero() {
		return false
	}
	day := StartOfDay(t)
	today := StartOfDay(time.Now())
	return !day.Before(today) && !day.After(today.AddDate(0, 0, days))
}

// LastNDays returns the local midnights of the last n days ending today,
// oldest first.
func LastNDays(n int, now time.Time) []time.Time {
	days := make([]time.Time, 0, n)
	today := StartOfDay(now)
	for i := n - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}

// Relative renders t against now as a compact human string: "just now",
// "5m ago", "in 2h", "3d ago", falling back to a short date beyond a week.
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	past := diff > 0
	if diff < 0 {
		diff = -diff
	}
	mins := int(diff.Minutes())
	hours := mins / 60
	days := hours / 24

	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		if past {
			return fmt.Sprintf("%dm ago", mins)
		}
		return fmt.Sprintf("in %dm", mins)
	case hours < 24:
		if past {
			return fmt.Sprintf("%dh ago", hours)
		}
		return fmt.Sprintf("in %dh", hours)
	case days < 7:
		if past {
			return fmt.Sprintf("%dd ago", days)
		}
		return fmt.Sprintf("in %dd", days)
	}
	return t.Local().Format("Jan 2")
}
