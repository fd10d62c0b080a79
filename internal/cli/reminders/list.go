package reminders

import (
	"fmt"

	"github.com/julianstephens/nudge/internal/cli"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	active := ctx.Engine.Active()

	if len(active) == 0 {
		fmt.Println("No upcoming reminders. Add one with 'nudge add'.")
		return nil
	}

	fmt.Printf("%d upcoming reminder(s)\n\n", len(active))
	cli.PrintReminderTable(active, false)
	return nil
}
