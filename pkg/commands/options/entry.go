package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/model"
)

// EntryOptions captures the attribute flags for creating or editing an entry.
type EntryOptions struct {
	Description string
	Category    string
	Tracker     string
	Due         string
	Status      string
	Priority    string
	Tags        []string
	Repeat      string
	Progress    int
	Mood        int
	Links       string
}

// AddEntryArgs wires entry attribute flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description for the entry.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category id or name.")
	cmd.Flags().StringVar(&o.Tracker, "tracker", "",
		"Tracker id.")
	cmd.Flags().StringVar(&o.Due, "due", "",
		`Due date, example: --due="2026-02-28".`)
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Status: pending, completed, skipped, archived.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: low, medium, high.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag; repeatable.")
	cmd.Flags().StringVar(&o.Repeat, "repeat", "",
		"Repeat cadence: none, daily, weekly, biweekly, monthly.")
	cmd.Flags().IntVar(&o.Progress, "progress", 0,
		"Progress percentage, 0-100.")
	cmd.Flags().IntVar(&o.Mood, "mood", 0,
		"Mood rating, 1-5.")
	cmd.Flags().StringVar(&o.Links, "links", "",
		"Free-form reference links.")
}

// GetDue parses the due date flag, if set.
func (o *EntryOptions) GetDue() (model.Timestamp, error) {
	if o.Due == "" {
		return model.Timestamp{}, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.Due, time.Local)
	if err != nil {
		return model.Timestamp{}, fmt.Errorf("invalid --due date %q: %w", o.Due, err)
	}
	return model.Timestamp{Time: t}, nil
}

// Draft resolves the flags into an entry draft for AddEntry.
func (o *EntryOptions) Draft(title string) (model.EntryDraft, error) {
	due, err := o.GetDue()
	if err != nil {
		return model.EntryDraft{}, err
	}
	return model.EntryDraft{
		Title:       title,
		Description: o.Description,
		Category:    o.Category,
		TrackerID:   o.Tracker,
		DueDate:     due,
		Status:      model.Status(o.Status),
		Priority:    model.Priority(o.Priority),
		Tags:        o.Tags,
		Repeat:      model.Repeat(o.Repeat),
		Progress:    o.Progress,
		Mood:        o.Mood,
		Links:       o.Links,
	}, nil
}

// Patch resolves only the flags the caller actually set into a partial
// update, so unset flags leave the entry untouched.
func (o *EntryOptions) Patch(cmd *cobra.Command, title string) (model.EntryPatch, error) {
	var p model.EntryPatch

	if title != "" {
		p.Title = &title
	}
	if cmd.Flags().Changed("description") {
		p.Description = &o.Description
	}
	if cmd.Flags().Changed("category") {
		p.Category = &o.Category
	}
	if cmd.Flags().Changed("tracker") {
		p.TrackerID = &o.Tracker
	}
	if cmd.Flags().Changed("due") {
		due, err := o.GetDue()
		if err != nil {
			return model.EntryPatch{}, err
		}
		p.DueDate = &due
	}
	if cmd.Flags().Changed("status") {
		status := model.Status(o.Status)
		if !status.Valid() {
			return model.EntryPatch{}, fmt.Errorf("invalid --status %q", o.Status)
		}
		p.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priority := model.Priority(o.Priority)
		if !priority.Valid() {
			return model.EntryPatch{}, fmt.Errorf("invalid --priority %q", o.Priority)
		}
		p.Priority = &priority
	}
	if cmd.Flags().Changed("tag") {
		tags := o.Tags
		p.Tags = &tags
	}
	if cmd.Flags().Changed("repeat") {
		repeat := model.Repeat(o.Repeat)
		if !repeat.Valid() {
			return model.EntryPatch{}, fmt.Errorf("invalid --repeat %q", o.Repeat)
		}
		p.Repeat = &repeat
	}
	if cmd.Flags().Changed("progress") {
		p.Progress = &o.Progress
	}
	if cmd.Flags().Changed("mood") {
		p.Mood = &o.Mood
	}
	if cmd.Flags().Changed("links") {
		p.Links = &o.Links
	}

	return p, nil
}
