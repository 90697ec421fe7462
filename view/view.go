package view

import "papershift/session"

type Viewer interface {
	Do(title string, report session.Report) error
}

var header = []string{"Date", "Weekday", "Start", "End", "Worked", "Breaks", "Overtime", "Sessions"}

const (
	totalLabel     = "Total overtime"
	notWorkedToday = "Not worked today"
)
