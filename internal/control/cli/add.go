package cli

import (
	"context"
	"fmt"
	"os"

	"iljeong/internal/control"
	"iljeong/internal/form"
	"iljeong/internal/model"
	"iljeong/internal/validate"
)

// AddCommand contains flags for the `add` command line command, for
// `go-flags` to parse command line args into. With --id it edits an
// existing event instead of creating a new one.
type AddCommand struct {
	Title string `short:"n" long:"title" description:"the title of the event" value-name:"<title>" required:"true"`
	Date  string `short:"d" long:"date" description:"the date of the event" value-name:"<yyyy-mm-dd>" required:"true"`
	Start string `short:"s" long:"start" description:"the time at which the event begins" value-name:"<HH:MM>" required:"true"`
	End   string `short:"e" long:"end" description:"the time at which the event ends" value-name:"<HH:MM>" required:"true"`

	Description string `long:"description" description:"a longer description of the event" value-name:"<text>"`
	Location    string `short:"l" long:"location" description:"where the event takes place" value-name:"<location>"`
	Category    string `short:"c" long:"category" description:"the category of the event" value-name:"<category>"`

	Notify int `long:"notify" description:"reminder lead time in minutes before the event starts" value-name:"<minutes>" default:"-1"`

	Repeat         string `short:"r" long:"repeat" description:"the repeat frequency; if omitted, no repetition is assumed" choice:"daily" choice:"weekly" choice:"monthly" choice:"yearly"`
	RepeatInterval int    `long:"repeat-interval" description:"repeat every n-th day/week/month/year" value-name:"<n>" default:"1"`
	RepeatTil      string `long:"repeat-til" description:"the date until which to repeat the event" value-name:"<yyyy-mm-dd>"`

	ID    string `long:"id" description:"the ID of an existing event to edit instead of creating a new one" value-name:"<id>"`
	Force bool   `short:"f" long:"force" description:"save even when the event overlaps existing events"`
}

// Execute executes the add command.
// (This gets called by `go-flags` when `add` is provided on the command line)
func (command *AddCommand) Execute(args []string) error {
	cfg, provider, err := loadEnv()
	if err != nil {
		return err
	}

	ctx := context.Background()
	controller := control.NewController(provider)
	if err := controller.Refresh(ctx); err != nil {
		return fmt.Errorf("can't load events: %w", err)
	}

	// when editing, the stored event has to exist
	var editing *model.Event
	if command.ID != "" {
		for _, e := range controller.Events() {
			if e.ID == command.ID {
				stored := e
				editing = &stored
				break
			}
		}
		if editing == nil {
			return fmt.Errorf("no event with id '%s'", command.ID)
		}
	}

	notify := command.Notify
	if notify < 0 {
		notify = cfg.DefaultNotificationTime
	}

	event := form.Prepare(
		editing,
		form.Fields{
			Title:            command.Title,
			Date:             command.Date,
			StartTime:        command.Start,
			EndTime:          command.End,
			Description:      command.Description,
			Location:         command.Location,
			Category:         command.Category,
			NotificationTime: notify,
		},
		command.Repeat != "",
		model.RepeatType(command.Repeat),
		command.RepeatInterval,
		command.RepeatTil,
	)

	if timeErrors := validate.TimeOrder(command.Start, command.End); !timeErrors.OK() {
		fmt.Fprintf(os.Stderr, "%s\n%s\n", timeErrors.StartTimeError, timeErrors.EndTimeError)
		return fmt.Errorf("end time %s is not after start time %s", command.End, command.Start)
	}

	conflicts, err := controller.Save(ctx, event, command.Force)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 && !command.Force {
		fmt.Fprintln(os.Stderr, "the event overlaps the following events (use --force to save anyway):")
		for _, c := range conflicts {
			fmt.Fprintf(os.Stderr, "  %s %s-%s  %s (%s)\n", c.Date, c.StartTime, c.EndTime, c.Title, c.ID)
		}
		return fmt.Errorf("not saved due to %d overlapping event(s)", len(conflicts))
	}

	return nil
}
