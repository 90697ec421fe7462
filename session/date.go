package session

import "time"

// DisplayLocation is the fixed offset every date and clock time is shown in,
// independent of the timezone the service reports.
var DisplayLocation = time.UTC

const (
	dateLayout  = "02.01.2006"
	clockLayout = "15:04"
)

type Date string

func DateOf(t time.Time) Date {
	return Date(t.In(DisplayLocation).Format(dateLayout))
}

func WeekdayOf(t time.Time) time.Weekday {
	return t.In(DisplayLocation).Weekday()
}

func ClockOf(t time.Time) string {
	return t.In(DisplayLocation).Format(clockLayout)
}

// StartOfDay is midnight of t's date in DisplayLocation.
func StartOfDay(t time.Time) time.Time {
	t = t.In(DisplayLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, DisplayLocation)
}

func StartOfMonth(t time.Time) time.Time {
	t = t.In(DisplayLocation)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, DisplayLocation)
}

func (d Date) String() string {
	return string(d)
}
