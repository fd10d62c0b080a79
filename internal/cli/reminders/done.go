package reminders

import (
	"fmt"

	"github.com/julianstephens/nudge/internal/cli"
)

type DoneCmd struct {
	ID string `arg:"" help:"Reminder ID to mark completed."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	if !ctx.Engine.MarkDone(c.ID) {
		fmt.Printf("No reminder with id %s.\n", c.ID)
		return nil
	}

	fmt.Printf("✓ Reminder completed: %s\n", c.ID)
	return nil
}
