package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"iljeong/internal/model"
	"iljeong/internal/notify"
)

// WatchCommand contains flags for the `watch` command line command, for
// `go-flags` to parse command line args into. It runs the reminder engine
// until interrupted.
type WatchCommand struct {
	Interval int `short:"i" long:"interval" description:"poll interval in seconds; overrides the configured value" value-name:"<seconds>"`
}

// Execute executes the watch command.
// (This gets called by `go-flags` when `watch` is provided on the command
// line)
func (command *WatchCommand) Execute(args []string) error {
	cfg, provider, err := loadEnv()
	if err != nil {
		return err
	}

	seconds := cfg.PollSeconds
	if command.Interval > 0 {
		seconds = command.Interval
	}

	engine := notify.NewEngine()
	err = engine.Start(
		time.Duration(seconds)*time.Second,
		func(ctx context.Context) ([]model.Event, error) { return provider.List(ctx) },
		func(n notify.Notification) {
			log.Info().Str("event", n.EventID).Msg(n.Message)
		},
	)
	if err != nil {
		return err
	}
	defer engine.Stop()

	log.Info().Int("interval", seconds).Msg("watching for due reminders (ctrl-c to stop)")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	return nil
}
