package reminders

import (
	"fmt"
	"time"

	"github.com/julianstephens/nudge/internal/cli"
	"github.com/julianstephens/nudge/internal/intake"
)

type AddCmd struct {
	Title    string `arg:"" help:"Reminder title."`
	Date     string `help:"Date (YYYY-MM-DD)." required:""`
	Time     string `help:"Time on a 12-hour clock (HH:MM)." required:""`
	Meridiem string `help:"AM or PM." default:"AM"`
	Category string `help:"Category label (personal|work|health|study|errand)."`
	Notes    string `help:"Free-form notes."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	reminder, warning, err := intake.Submit(intake.Fields{
		Title:    c.Title,
		Category: c.Category,
		Date:     c.Date,
		Time:     c.Time,
		Meridiem: c.Meridiem,
		Notes:    c.Notes,
	}, time.Now())
	if err != nil {
		return err
	}

	ctx.Engine.Add(reminder)

	fmt.Printf("✓ Reminder added: %s at %s\n", reminder.Title, reminder.DateTime)
	if warning != "" {
		fmt.Printf("⚠ %s\n", warning)
	}
	return nil
}
