package cli

import (
	"context"
	"fmt"

	"iljeong/internal/control"
)

// RemoveCommand contains flags for the `rm` command line command, for
// `go-flags` to parse command line args into.
type RemoveCommand struct {
	Args struct {
		IDs []string `positional-arg-name:"<id>" required:"1"`
	} `positional-args:"yes"`
}

// Execute executes the rm command.
// (This gets called by `go-flags` when `rm` is provided on the command
// line)
func (command *RemoveCommand) Execute(args []string) error {
	_, provider, err := loadEnv()
	if err != nil {
		return err
	}

	ctx := context.Background()
	controller := control.NewController(provider)

	for _, id := range command.Args.IDs {
		if err := controller.Delete(ctx, id); err != nil {
			return fmt.Errorf("can't delete event '%s': %w", id, err)
		}
	}
	return nil
}
