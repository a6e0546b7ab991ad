package store

import (
	"math"
	"time"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/timeutil"
)

// Analytics are pure projections over the current entry collection; nothing
// here mutates state or emits events.

// CompletedToday counts entries completed on the current calendar day.
func (s *Store) CompletedToday() int {
	now := s.now()
	count := 0
	for _, e := range s.entries {
		if e.Status == model.StatusCompleted && !e.CompletedAt.IsZero() &&
			timeutil.SameDay(e.CompletedAt.Time, now) {
			count++
		}
	}
	return count
}

// Streak is the length of the current consecutive-day completion streak. A
// streak only counts while its most recent day is today or yesterday; once a
// full day is skipped it resets to zero.
func (s *Store) Streak() int {
	days := make(map[string]struct{})
	var latest time.Time
	for _, e := range s.entries {
		if e.Status != model.StatusCompleted || e.CompletedAt.IsZero() {
			continue
		}
		days[timeutil.DayKey(e.CompletedAt.Time)] = struct{}{}
		if e.CompletedAt.After(latest) {
			latest = e.CompletedAt.Time
		}
	}
	if len(days) == 0 {
		return 0
	}

	now := s.now()
	today := timeutil.DayKey(now)
	yesterday := timeutil.DayKey(now.AddDate(0, 0, -1))
	latestKey := timeutil.DayKey(latest)
	if latestKey != today && latestKey != yesterday {
		return 0
	}

	streak := 0
	check := timeutil.StartOfDay(latest)
	for {
		if _, ok := days[timeutil.DayKey(check)]; !ok {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// CompletionRate reports the percentage of entries created within the
// trailing window of days that are completed, rounded to the nearest
// integer. Zero qualifying entries yield zero.
func (s *Store) CompletionRate(windowDays int) int {
	since := timeutil.StartOfDay(s.now().AddDate(0, 0, -windowDays))

	total := 0
	completed := 0
	for _, e := range s.entries {
		if e.CreatedAt.Before(since) {
			continue
		}
		total++
		if e.Status == model.StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	ID    string
	Name  string
	Color string
	Count int
}

// CategoryBreakdown counts entries per category, skipping categories with no
// entries.
func (s *Store) CategoryBreakdown() []CategoryCount {
	counts := make(map[string]int, len(s.categories))
	for _, e := range s.entries {
		if e.Category != "" {
			counts[e.Category]++
		}
	}

	out := make([]CategoryCount, 0, len(s.categories))
	for _, c := range s.categories {
		if n := counts[c.ID]; n > 0 {
			out = append(out, CategoryCount{ID: c.ID, Name: c.Name, Color: c.Color, Count: n})
		}
	}
	return out
}

// WeekdayBreakdown counts completions by the weekday of completedAt,
// indexed Sunday through Saturday.
func (s *Store) WeekdayBreakdown() [7]int {
	var counts [7]int
	for _, e := range s.entries {
		if e.Status == model.StatusCompleted && !e.CompletedAt.IsZero() {
			counts[int(e.CompletedAt.Local().Weekday())]++
		}
	}
	return counts
}

// DayCount is one day of the completions-per-day series.
type DayCount struct {
	Day   time.Time
	Count int
}

// CompletionsPerDay returns the completion count for each of the last n
// days, oldest first.
func (s *Store) CompletionsPerDay(n int) []DayCount {
	counts := make(map[string]int)
	for _, e := range s.entries {
		if e.Status == model.StatusCompleted && !e.CompletedAt.IsZero() {
			counts[timeutil.DayKey(e.CompletedAt.Time)]++
		}
	}

	days := timeutil.LastNDays(n, s.now())
	out := make([]DayCount, 0, n)
	for _, day := range days {
		out = append(out, DayCount{Day: day, Count: counts[timeutil.DayKey(day)]})
	}
	return out
}
