package reminders

import (
	"fmt"

	"github.com/julianstephens/nudge/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Reminder ID to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if !ctx.Engine.Delete(c.ID) {
		fmt.Printf("No reminder with id %s.\n", c.ID)
		return nil
	}

	fmt.Printf("✓ Reminder deleted: %s\n", c.ID)
	return nil
}
