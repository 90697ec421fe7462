package view

import (
	"fmt"
	"io"
	"strings"

	"papershift/session"
)

type LineWriter struct {
	out   io.Writer
	color bool
}

func NewLineWriter(out io.Writer, color bool) *LineWriter {
	return &LineWriter{out: out, color: color}
}

// Short prints start, worked, breaks and overtime separated by spaces.
func (w *LineWriter) Short(s session.Summary, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w.out, notWorkedToday)
		return err
	}
	fields := s.Fields()
	if w.color {
		fields[3] = colorTone(s.OvertimeTone, fields[3])
	}
	_, err := fmt.Fprintln(w.out, strings.Join(fields, " "))
	return err
}

// Sentence prints the summary the way a person would say it.
func (w *LineWriter) Sentence(s session.Summary, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w.out, notWorkedToday)
		return err
	}
	overtime := s.Overtime
	if w.color {
		overtime = colorTone(s.OvertimeTone, overtime)
	}
	var err error
	switch {
	case s.State == session.StateBreaking:
		_, err = fmt.Fprintf(w.out, "Started at %s, on a break, worked for %s (breaks %s, overtime %s)\n", s.Start, s.Worked, s.Breaks, overtime)
	case s.Open:
		_, err = fmt.Fprintf(w.out, "Started at %s, worked for %s (breaks %s, overtime %s)\n", s.Start, s.Worked, s.Breaks, overtime)
	default:
		_, err = fmt.Fprintf(w.out, "Worked from %s to %s for %s (breaks %s, overtime %s)\n", s.Start, s.End, s.Worked, s.Breaks, overtime)
	}
	return err
}
