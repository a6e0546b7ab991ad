package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/tracker/pkg/model"
)

// completedOn seeds a completed entry with both timestamps at the given time.
func completedOn(s *Store, title string, at time.Time) {
	seed(s, &model.Entry{
		Title:       title,
		Status:      model.StatusCompleted,
		CompletedAt: ts(at),
		CreatedAt:   ts(at),
	})
}

func TestCompletedToday(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	completedOn(s, "a", testClock.Add(-2*time.Hour))
	completedOn(s, "b", testClock.Add(-8*time.Hour))
	completedOn(s, "yesterday", testClock.AddDate(0, 0, -1))
	seed(s, &model.Entry{Title: "pending", CreatedAt: ts(testClock)})

	assert.Equal(2, s.CompletedToday())
}

func TestStreakConsecutiveDays(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	completedOn(s, "today", testClock)
	completedOn(s, "yesterday", testClock.AddDate(0, 0, -1))
	completedOn(s, "two-ago", testClock.AddDate(0, 0, -2))
	// Two completions on one day still count that day once.
	completedOn(s, "also-today", testClock.Add(-time.Hour))

	assert.Equal(3, s.Streak())
}

func TestStreakSurvivesUntilYesterday(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	completedOn(s, "yesterday", testClock.AddDate(0, 0, -1))
	completedOn(s, "two-ago", testClock.AddDate(0, 0, -2))

	assert.Equal(2, s.Streak())
}

func TestStreakResetsAfterSkippedDay(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	completedOn(s, "two-ago", testClock.AddDate(0, 0, -2))
	completedOn(s, "three-ago", testClock.AddDate(0, 0, -3))

	assert.Equal(0, s.Streak())
}

func TestStreakBreaksAtGap(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	completedOn(s, "today", testClock)
	completedOn(s, "yesterday", testClock.AddDate(0, 0, -1))
	// Gap at two days ago.
	completedOn(s, "three-ago", testClock.AddDate(0, 0, -3))

	assert.Equal(2, s.Streak())
}

func TestStreakEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, 0, s.Streak())
}

func TestCompletionRate(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	completedOn(s, "done", testClock.AddDate(0, 0, -1))
	seed(s, &model.Entry{Title: "open-1", CreatedAt: ts(testClock.AddDate(0, 0, -2))})
	seed(s, &model.Entry{Title: "open-2", CreatedAt: ts(testClock.AddDate(0, 0, -3))})
	// Outside the window: neither counted nor completed.
	seed(s, &model.Entry{Title: "ancient", CreatedAt: ts(testClock.AddDate(0, 0, -40))})

	assert.Equal(33, s.CompletionRate(7), "1 of 3 rounds to 33")
	assert.Equal(25, s.CompletionRate(60), "wider window picks up the old entry")
}

func TestCompletionRateNoEntries(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, 0, s.CompletionRate(7))
}

func TestCategoryBreakdownSkipsEmptyCategories(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	seed(s, &model.Entry{Title: "a", Category: "cat_tasks"})
	seed(s, &model.Entry{Title: "b", Category: "cat_tasks"})
	seed(s, &model.Entry{Title: "c", Category: "cat_habits"})
	seed(s, &model.Entry{Title: "uncategorized"})

	got := s.CategoryBreakdown()
	assert.Len(got, 2)
	assert.Equal("Tasks", got[0].Name)
	assert.Equal(2, got[0].Count)
	assert.Equal("Habits", got[1].Name)
	assert.Equal(1, got[1].Count)
}

func TestWeekdayBreakdown(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	sunday := time.Date(2026, 2, 15, 10, 0, 0, 0, time.Local)
	completedOn(s, "sun-1", sunday)
	completedOn(s, "sun-2", sunday.Add(time.Hour))
	completedOn(s, "wed", sunday.AddDate(0, 0, 3))
	seed(s, &model.Entry{Title: "pending", CreatedAt: ts(sunday)})

	got := s.WeekdayBreakdown()
	assert.Equal(2, got[int(time.Sunday)])
	assert.Equal(1, got[int(time.Wednesday)])
	assert.Equal(0, got[int(time.Monday)])
}

func TestCompletionsPerDay(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	completedOn(s, "a", testClock)
	completedOn(s, "b", testClock)
	completedOn(s, "c", testClock.AddDate(0, 0, -2))

	got := s.CompletionsPerDay(3)
	assert.Len(got, 3)
	assert.Equal(1, got[0].Count, "two days ago")
	assert.Equal(0, got[1].Count, "yesterday")
	assert.Equal(2, got[2].Count, "today")
}
