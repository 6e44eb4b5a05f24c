package cli

import (
	"context"
	"fmt"
	"time"

	"iljeong/internal/control"
	"iljeong/internal/filter"
	"iljeong/internal/holiday"
	"iljeong/internal/model"
)

// ListCommand contains flags for the `list` command line command, for
// `go-flags` to parse command line args into.
type ListCommand struct {
	Search string `short:"q" long:"search" description:"only show events whose title or description contains this term" value-name:"<term>"`
	View   string `long:"view" description:"the calendar window to show" choice:"week" choice:"month" default:"month"`
	Date   string `short:"d" long:"date" description:"the reference date for the view window; today if omitted" value-name:"<yyyy-mm-dd>"`

	ShowIDs bool `long:"ids" description:"include event IDs in the output"`
}

// Execute executes the list command.
// (This gets called by `go-flags` when `list` is provided on the command
// line)
func (command *ListCommand) Execute(args []string) error {
	_, provider, err := loadEnv()
	if err != nil {
		return err
	}

	reference := time.Now()
	if command.Date != "" {
		d, err := model.DateFromString(command.Date)
		if err != nil {
			return err
		}
		reference = time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
	}

	ctx := context.Background()
	controller := control.NewController(provider)
	if err := controller.Refresh(ctx); err != nil {
		return fmt.Errorf("can't load events: %w", err)
	}

	shown := filter.Events(controller.Events(), command.Search, reference, filter.View(command.View))
	holidays := holiday.ForMonth(reference)

	for _, e := range shown {
		line := fmt.Sprintf("%s %s-%s  %s", e.Date, e.StartTime, e.EndTime, e.Title)
		if name, ok := holidays[e.Date]; ok {
			line += fmt.Sprintf(" [%s]", name)
		}
		if e.Repeat.Repeats() {
			line += fmt.Sprintf(" (repeats %s, every %d)", e.Repeat.Type, e.Repeat.Interval)
		}
		if command.ShowIDs {
			line += "  " + e.ID
		}
		fmt.Println(line)
	}

	return nil
}
