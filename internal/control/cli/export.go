package cli

import (
	"context"
	"fmt"
	"os"

	"iljeong/internal/control"
	"iljeong/internal/ics"
)

// ExportCommand contains flags for the `export` command line command, for
// `go-flags` to parse command line args into.
type ExportCommand struct {
	Output string `short:"o" long:"output" description:"file to write the iCalendar document to; stdout if omitted" value-name:"<FILE>"`
}

// Execute executes the export command.
// (This gets called by `go-flags` when `export` is provided on the command
// line)
func (command *ExportCommand) Execute(args []string) error {
	_, provider, err := loadEnv()
	if err != nil {
		return err
	}

	controller := control.NewController(provider)
	if err := controller.Refresh(context.Background()); err != nil {
		return fmt.Errorf("can't load events: %w", err)
	}

	document := ics.Export(controller.Events())

	if command.Output == "" {
		fmt.Print(document)
		return nil
	}
	return os.WriteFile(command.Output, []byte(document), 0o644)
}
