package session

import (
	"strconv"
	"time"
)

type Row struct {
	Date         Date
	Weekday      string
	Start        string
	End          string
	Worked       string
	Breaks       string
	Overtime     string
	OvertimeTone Tone
	Sessions     string

	Day DayAggregate
}

func (r Row) Fields() []string {
	return []string{r.Date.String(), r.Weekday, r.Start, r.End, r.Worked, r.Breaks, r.Overtime, r.Sessions}
}

type Report struct {
	Rows                 []Row
	TotalOvertimeMinutes int
}

func (r Report) TotalOvertime() string {
	return FormatMinutes(r.TotalOvertimeMinutes)
}

func (r Report) TotalOvertimeTone() Tone {
	return ToneOf(r.TotalOvertimeMinutes)
}

// BuildReport expects days already ordered by Aggregate.
func BuildReport(days []DayAggregate) Report {
	report := Report{Rows: make([]Row, 0, len(days))}
	for _, d := range days {
		report.Rows = append(report.Rows, newRow(d))
		report.TotalOvertimeMinutes += d.OvertimeMinutes
	}
	return report
}

func newRow(d DayAggregate) Row {
	r := Row{
		Date:         d.Date,
		Weekday:      d.Weekday.String(),
		Start:        ClockOf(d.Start),
		End:          ClockOf(d.End),
		Worked:       FormatMinutes(d.NetMinutes()),
		OvertimeTone: ToneOf(d.OvertimeMinutes),
		Day:          d,
	}
	if d.BreakMinutes != 0 {
		r.Breaks = FormatMinutes(d.BreakMinutes)
	}
	if d.OvertimeMinutes != 0 {
		r.Overtime = FormatMinutes(d.OvertimeMinutes)
	}
	if d.SessionCount != 1 {
		r.Sessions = strconv.Itoa(d.SessionCount)
	}
	return r
}

type Summary struct {
	Start        string
	End          string
	Worked       string
	Breaks       string
	Overtime     string
	OvertimeTone Tone
	Open         bool
	State        State
}

func (s Summary) Fields() []string {
	return []string{s.Start, s.Worked, s.Breaks, s.Overtime}
}

// Today summarises the aggregate dated like now. The second return value is
// false when nothing was worked that day.
func Today(days []DayAggregate, now time.Time) (Summary, bool) {
	today := DateOf(now)
	for _, d := range days {
		if d.Date != today {
			continue
		}
		return Summary{
			Start:        ClockOf(d.Start),
			End:          ClockOf(d.End),
			Worked:       FormatMinutes(d.NetMinutes()),
			Breaks:       FormatMinutes(d.BreakMinutes),
			Overtime:     FormatMinutes(d.OvertimeMinutes),
			OvertimeTone: ToneOf(d.OvertimeMinutes),
			Open:         d.Open,
			State:        d.State,
		}, true
	}
	return Summary{}, false
}
