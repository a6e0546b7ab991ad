package timeutil

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 18, 0, 1, 0, 0, time.Local)
	b := time.Date(2026, 2, 18, 23, 59, 0, 0, time.Local)
	c := time.Date(2026, 2, 19, 0, 0, 1, 0, time.Local)

	if !SameDay(a, b) {
		t.Fatalf("expected %v and %v on the same day", a, b)
	}
	if SameDay(b, c) {
		t.Fatalf("expected %v and %v on different days", b, c)
	}
}

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2026, 2, 3, 15, 4, 5, 0, time.Local))
	if got != "2026-02-03" {
		t.Fatalf("expected 2026-02-03, got %q", got)
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2026, 2, 18, 13, 45, 12, 99, time.Local)

	start := StartOfDay(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Fatalf("start of day not at midnight: %v", start)
	}

	end := EndOfDay(at)
	if !SameDay(at, end) {
		t.Fatalf("end of day left the day: %v", end)
	}
	if !end.After(at) {
		t.Fatalf("end of day should be after %v, got %v", at, end)
	}
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2026, 2, 18, 10, 0, 0, 0, time.Local)
	days := LastNDays(3, now)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if DayKey(days[0]) != "2026-02-16" || DayKey(days[2]) != "2026-02-18" {
		t.Fatalf("unexpected day range: %v", days)
	}
}

func TestNextOccurrence(t *testing.T) {
	at := time.Date(2026, 1, 31, 9, 0, 0, 0, time.Local)

	tests := []struct {
		cadence Cadence
		want    string
		ok      bool
	}{
		{CadenceDaily, "2026-02-01", true},
		{CadenceWeekly, "2026-02-07", true},
		{CadenceBiweekly, "2026-02-14", true},
		{CadenceMonthly, "2026-03-03", true}, // Jan 31 + 1 month normalizes past Feb
		{CadenceNone, "", false},
		{Cadence("bogus"), "", false},
	}

	for _, tc := range tests {
		next, ok := NextOccurrence(at, tc.cadence)
		if ok != tc.ok {
			t.Fatalf("%s: expected ok=%v", tc.cadence, tc.ok)
		}
		if ok && DayKey(next) != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.cadence, tc.want, DayKey(next))
		}
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.Local)

	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(5 * time.Minute), "in 5m"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
		{now.Add(30 * 24 * time.Hour), "Mar 20"},
	}

	for _, tc := range tests {
		if got := Relative(tc.at, now); got != tc.want {
			t.Fatalf("Relative(%v): expected %q, got %q", tc.at, tc.want, got)
		}
	}
}
