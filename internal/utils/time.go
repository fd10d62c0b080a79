package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/nudge/internal/constants"
)

// ParseDateTime parses a canonical naive local date-time string
// (YYYY-MM-DDTHH:MM:SS) in the system's local timezone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(constants.DateTimeFormat, s, time.Local)
}

// FormatDateTime renders an instant in the canonical stored form.
func FormatDateTime(t time.Time) string {
	return t.Format(constants.DateTimeFormat)
}

// ParseClockTime splits a 12-hour clock string (H:MM or HH:MM) into its
// numeric hour and minute components.
func ParseClockTime(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format (expected HH:MM): %s", s)
	}
	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour: %s", parts[0])
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute: %s", parts[1])
	}
	return hour, minute, nil
}

// To24Hour converts a 12-hour clock hour plus meridiem to 24-hour form.
// PM with an hour below 12 gains 12; 12 AM becomes 0; everything else
// passes through unchanged.
func To24Hour(hour int, meridiem constants.Meridiem) int {
	switch {
	case meridiem == constants.MeridiemPM && hour < 12:
		return hour + 12
	case meridiem == constants.MeridiemAM && hour == 12:
		return 0
	default:
		return hour
	}
}

// ParseMeridiem normalizes an AM/PM selector, defaulting to AM when absent.
func ParseMeridiem(s string) (constants.Meridiem, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "AM":
		return constants.MeridiemAM, nil
	case "PM":
		return constants.MeridiemPM, nil
	default:
		return "", fmt.Errorf("invalid meridiem: %s (must be AM or PM)", s)
	}
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}
