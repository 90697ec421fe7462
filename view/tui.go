package view

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"papershift/session"
)

func NewTUI(color bool, logger *slog.Logger) Viewer {
	return &tui{color: color, logger: logger}
}

type tui struct {
	color  bool
	logger *slog.Logger

	app *tview.Application
}

func (t *tui) Do(title string, report session.Report) error {
	t.app = tview.NewApplication()

	table := newReportTable(report, t.color)
	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			t.logger.Debug("quit tui")
			t.app.Stop()
			return nil
		}
		return event
	})

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText(title), 1, 1, false).
		AddItem(table, 0, 1, true)
	return t.app.SetRoot(root, true).SetFocus(table).Run()
}

func newReportTable(report session.Report, color bool) *tview.Table {
	table := tview.NewTable().SetBorders(true)
	table.SetSelectable(true, false).SetFixed(1, 1)

	for col, h := range header {
		table.SetCell(0, col, tview.NewTableCell(h).SetAlign(tview.AlignCenter).SetSelectable(false))
	}

	offset := 1
	for i, r := range report.Rows {
		for col, f := range r.Fields() {
			cell := tview.NewTableCell(" " + f + " ").SetAlign(tview.AlignCenter)
			if color {
				switch col {
				case 0:
					cell.SetTextColor(dateColor(r.Day.Weekday))
				case 6:
					cell.SetTextColor(toneColor(r.OvertimeTone))
				}
			}
			table.SetCell(i+offset, col, cell)
		}
	}

	footer := len(report.Rows) + offset
	table.SetCell(footer, 5, tview.NewTableCell(totalLabel).SetAlign(tview.AlignCenter).SetSelectable(false))
	total := tview.NewTableCell(" " + report.TotalOvertime() + " ").SetAlign(tview.AlignCenter).SetSelectable(false)
	if color {
		total.SetTextColor(toneColor(report.TotalOvertimeTone()))
	}
	table.SetCell(footer, 6, total)
	return table
}

func dateColor(w time.Weekday) tcell.Color {
	switch w {
	case time.Saturday:
		return tcell.ColorBlue
	case time.Sunday:
		return tcell.ColorRed
	}
	return tcell.ColorWhite
}

func toneColor(tone session.Tone) tcell.Color {
	if tone == session.ToneNegative {
		return tcell.ColorRed
	}
	return tcell.ColorGreen
}
