package session

import (
	"fmt"
	"time"
)

type Tone int

const (
	ToneNonNegative Tone = iota
	ToneNegative
)

// ElapsedMinutes is the whole number of minutes between a and b, in either order.
func ElapsedMinutes(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d / time.Minute)
}

func FormatMinutes(total int) string {
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%02d:%02d", sign, total/60, total%60)
}

func ToneOf(total int) Tone {
	if total < 0 {
		return ToneNegative
	}
	return ToneNonNegative
}
