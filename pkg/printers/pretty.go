// Package printers renders entries and stats for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tracker/pkg/model"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a table of entries: status mark, title, category, due
// date, priority, and tags. Category ids resolve to display names through
// categoryName.
func (pp *PrettyPrint) Entries(entries []*model.Entry, categoryName func(id string) string) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, e := range entries {
		due := ""
		if !e.DueDate.IsZero() {
			due = e.DueDate.Local().Format("Jan 2")
		}
		cols := []interface{}{
			statusMark(e.Status),
			e.Title,
			categoryName(e.Category),
			due,
			string(e.Priority),
			strings.Join(e.Tags, ", "),
		}
		if pp.ShowID {
			cols = append([]interface{}{shortID(e.ID)}, cols...)
		}
		tbl.AddRow(cols...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func statusMark(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return "✘"
	case model.StatusSkipped:
		return "›"
	case model.StatusArchived:
		return "⦵"
	default:
		return "●"
	}
}

// StatCard prints a single labeled statistic.
func (pp *PrettyPrint) StatCard(label string, value string) {
	v := color.New(color.Bold)
	l := color.New(color.Faint)
	_, _ = v.Printf("%8s  ", value)
	_, _ = l.Println(label)
}

// Bars renders a horizontal bar per labeled count, scaled to the largest.
func (pp *PrettyPrint) Bars(labels []string, counts []int) {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, label := range labels {
		width := counts[i] * 20 / max
		tbl.AddRow(label, strings.Repeat("█", width), counts[i])
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
