package view

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"papershift/session"
)

type tableViewer struct {
	out   io.Writer
	color bool
}

func NewTableViewer(out io.Writer, color bool) Viewer {
	return &tableViewer{out: out, color: color}
}

func (v *tableViewer) Do(title string, report session.Report) error {
	buildTableWriter(v.out, title, report, v.color).Render()
	return nil
}

func buildTableWriter(out io.Writer, title string, report session.Report, color bool) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(toRow(header))

	for _, r := range report.Rows {
		fields := r.Fields()
		if color {
			fields[0] = colorDate(r, fields[0])
			fields[6] = colorTone(r.OvertimeTone, fields[6])
		}
		t.AppendRow(toRow(fields))
	}

	total := report.TotalOvertime()
	if color {
		total = colorTone(report.TotalOvertimeTone(), total)
	}
	t.AppendFooter(table.Row{"", "", "", "", "", totalLabel, total, ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleRounded)
	return t
}

func toRow(fields []string) table.Row {
	row := make(table.Row, 0, len(fields))
	for _, f := range fields {
		row = append(row, f)
	}
	return row
}

func colorTone(tone session.Tone, s string) string {
	if s == "" {
		return s
	}
	if tone == session.ToneNegative {
		return text.Colors{text.FgRed}.Sprint(s)
	}
	return text.Colors{text.FgGreen}.Sprint(s)
}

func colorDate(r session.Row, s string) string {
	switch r.Day.Weekday {
	case time.Saturday:
		return text.Colors{text.FgBlue}.Sprint(s)
	case time.Sunday:
		return text.Colors{text.FgRed}.Sprint(s)
	}
	return s
}
