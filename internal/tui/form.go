package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nudge/internal/constants"
	"github.com/julianstephens/nudge/internal/utils"
)

var errInvalidDate = errors.New("expected YYYY-MM-DD")

// AddFormModel holds the raw add-reminder form input.
type AddFormModel struct {
	Title    string
	Category string
	Date     string
	Time     string
	Meridiem string
	Notes    string
}

// NewAddFormModel seeds the form with today's date and a morning default.
func NewAddFormModel() *AddFormModel {
	return &AddFormModel{
		Date:     time.Now().Format(constants.DateFormat),
		Meridiem: string(constants.MeridiemAM),
	}
}

// NewAddForm creates the interactive add-reminder form. Field-level
// validation here keeps the obvious mistakes in-form; the intake package
// still owns the final canonical validation on submit.
func NewAddForm(fm *AddFormModel) *huh.Form {
	categoryOptions := make([]huh.Option[string], 0, len(constants.CategoryMenu)+1)
	categoryOptions = append(categoryOptions, huh.NewOption("(none)", ""))
	for _, c := range constants.CategoryMenu {
		categoryOptions = append(categoryOptions, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateDateFormat(s) {
						return errInvalidDate
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM)").
				Value(&fm.Time).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, _, err := utils.ParseClockTime(s); err != nil {
						return err
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("AM/PM").
				Options(
					huh.NewOption("AM", string(constants.MeridiemAM)),
					huh.NewOption("PM", string(constants.MeridiemPM)),
				).
				Value(&fm.Meridiem),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}
