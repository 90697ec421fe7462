package session

import (
	"sort"
	"time"
)

type DayAggregate struct {
	Date            Date
	Weekday         time.Weekday
	Start           time.Time
	End             time.Time
	WorkedMinutes   int
	BreakMinutes    int
	OvertimeMinutes int
	SessionCount    int
	// Open reports whether any merged session was still running.
	Open  bool
	State State
}

func (d DayAggregate) NetMinutes() int {
	return d.WorkedMinutes - d.BreakMinutes
}

func newDayAggregate(d SessionDetail) DayAggregate {
	return DayAggregate{
		Date:            DateOf(d.StartsAt),
		Weekday:         WeekdayOf(d.StartsAt),
		Start:           d.StartsAt,
		End:             d.End,
		WorkedMinutes:   d.WorkedMinutes,
		BreakMinutes:    d.BreakMinutes,
		OvertimeMinutes: d.OvertimeMinutes,
		SessionCount:    1,
		Open:            d.IsOpen(),
		State:           d.State(),
	}
}

// mergeDay folds every row of one date into a single aggregate. Overtime is
// recomputed from the summed minutes so the day is charged the quota once.
func mergeDay(rows []DayAggregate, quotaMinutes int) DayAggregate {
	merged := rows[0]
	for _, r := range rows[1:] {
		if r.Start.Before(merged.Start) {
			merged.Start = r.Start
		}
		if r.End.After(merged.End) {
			merged.End = r.End
		}
		merged.WorkedMinutes += r.WorkedMinutes
		merged.BreakMinutes += r.BreakMinutes
		merged.Open = merged.Open || r.Open
		if r.State != StateOff {
			merged.State = r.State
		}
	}
	merged.SessionCount = len(rows)
	merged.OvertimeMinutes = merged.WorkedMinutes - merged.BreakMinutes - quotaMinutes
	return merged
}

func Aggregate(details []SessionDetail, quotaMinutes int) []DayAggregate {
	groups := make(map[Date][]DayAggregate)
	for _, d := range details {
		row := newDayAggregate(d)
		groups[row.Date] = append(groups[row.Date], row)
	}

	days := make([]DayAggregate, 0, len(groups))
	for _, rows := range groups {
		days = append(days, mergeDay(rows, quotaMinutes))
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Start.Before(days[j].Start)
	})
	return days
}
