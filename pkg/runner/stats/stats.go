// Package stats provides the runner logic for the analytics dashboard.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/printers"
	"tableflip.dev/tracker/pkg/store"
	"tableflip.dev/tracker/pkg/timeutil"
)

// Stats renders completion stats, the current streak, and the category and
// weekday breakdowns.
type Stats struct {
	WindowDays  int
	WindowLabel string

	Store *store.Store
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not report, no store")
	}

	all := n.Store.GetEntries(store.Filter{Status: store.StatusAll})
	completed := 0
	for _, e := range all {
		if e.Status == model.StatusCompleted {
			completed++
		}
	}

	pp := printers.PrettyPrint{}
	pp.Title("overview")
	pp.StatCard("total entries", fmt.Sprintf("%d", len(all)))
	pp.StatCard("total completed", fmt.Sprintf("%d", completed))
	pp.StatCard("completed today", fmt.Sprintf("%d", n.Store.CompletedToday()))
	pp.StatCard("current streak", streakLabel(n.Store.Streak()))
	pp.StatCard(n.WindowLabel+" completion rate", fmt.Sprintf("%d%%", n.Store.CompletionRate(n.WindowDays)))
	pp.StatCard("30d completion rate", fmt.Sprintf("%d%%", n.Store.CompletionRate(30)))
	pp.NewLine()

	if breakdown := n.Store.CategoryBreakdown(); len(breakdown) > 0 {
		pp.Title("by category")
		labels := make([]string, 0, len(breakdown))
		counts := make([]int, 0, len(breakdown))
		for _, c := range breakdown {
			labels = append(labels, c.Name)
			counts = append(counts, c.Count)
		}
		pp.Bars(labels, counts)
		pp.NewLine()
	}

	weekdays := n.Store.WeekdayBreakdown()
	total := 0
	for _, c := range weekdays {
		total += c
	}
	if total > 0 {
		pp.Title("by weekday")
		labels := make([]string, 7)
		counts := make([]int, 7)
		for i := range weekdays {
			labels[i] = time.Weekday(i).String()[:3]
			counts[i] = weekdays[i]
		}
		pp.Bars(labels, counts)
		pp.NewLine()

		pp.Title("last " + timeutil.FormatWindowDays(n.WindowDays))
		series := n.Store.CompletionsPerDay(n.WindowDays)
		dayLabels := make([]string, 0, len(series))
		dayCounts := make([]int, 0, len(series))
		for _, d := range series {
			dayLabels = append(dayLabels, d.Day.Format("Jan 2"))
			dayCounts = append(dayCounts, d.Count)
		}
		pp.Bars(dayLabels, dayCounts)
	}

	return nil
}

func streakLabel(streak int) string {
	if streak == 0 {
		return "—"
	}
	return fmt.Sprintf("🔥 %d", streak)
}
