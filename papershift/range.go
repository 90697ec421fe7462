package papershift

import (
	"fmt"
	"time"

	"papershift/session"
)

const yearMonthLayout = "2006-01"

// MonthRange covers yearMonth ("2024-03") in the display location. An empty
// yearMonth means the month containing now.
func MonthRange(yearMonth string, now time.Time) (TimeRange, error) {
	monthStart := session.StartOfMonth(now)
	if yearMonth != "" {
		t, err := time.ParseInLocation(yearMonthLayout, yearMonth, session.DisplayLocation)
		if err != nil {
			return TimeRange{}, fmt.Errorf("invalid month %q, expected e.g. 2024-03", yearMonth)
		}
		monthStart = t
	}
	return TimeRange{Start: monthStart, End: monthStart.AddDate(0, 1, 0)}, nil
}

func DayRange(now time.Time) TimeRange {
	start := session.StartOfDay(now)
	return TimeRange{Start: start, End: start.AddDate(0, 0, 1)}
}

func (r TimeRange) Title() string {
	if r.End.Sub(r.Start) <= 24*time.Hour {
		return string(session.DateOf(r.Start))
	}
	return r.Start.Format(yearMonthLayout)
}
