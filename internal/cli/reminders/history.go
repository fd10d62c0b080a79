package reminders

import (
	"fmt"

	"github.com/julianstephens/nudge/internal/cli"
	"github.com/julianstephens/nudge/internal/models"
)

type HistoryCmd struct {
	Filter string `help:"Status filter (all|upcoming|missed|completed)." default:"all"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	filter, err := models.ParseFilter(c.Filter)
	if err != nil {
		return err
	}

	history := ctx.Engine.History(filter)

	if len(history) == 0 {
		fmt.Println("No reminders recorded yet.")
		return nil
	}

	cli.PrintReminderTable(history, true)
	return nil
}
