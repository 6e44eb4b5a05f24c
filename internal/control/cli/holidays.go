package cli

import (
	"fmt"
	"sort"
	"time"

	"iljeong/internal/holiday"
	"iljeong/internal/model"
)

// HolidaysCommand contains flags for the `holidays` command line command,
// for `go-flags` to parse command line args into.
type HolidaysCommand struct {
	Date string `short:"d" long:"date" description:"a date in the month to show; today's month if omitted" value-name:"<yyyy-mm-dd>"`
}

// Execute executes the holidays command.
// (This gets called by `go-flags` when `holidays` is provided on the
// command line)
func (command *HolidaysCommand) Execute(args []string) error {
	reference := time.Now()
	if command.Date != "" {
		d, err := model.DateFromString(command.Date)
		if err != nil {
			return err
		}
		reference = time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
	}

	holidays := holiday.ForMonth(reference)

	dates := make([]string, 0, len(holidays))
	for date := range holidays {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		fmt.Printf("%s  %s\n", date, holidays[date])
	}
	return nil
}
