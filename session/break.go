package session

import "time"

type Break struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// Minutes is 0 unless both bounds are known.
func (b Break) Minutes() int {
	if b.StartsAt == nil || b.EndsAt == nil {
		return 0
	}
	return ElapsedMinutes(*b.StartsAt, *b.EndsAt)
}

func BreakMinutes(bs []Break) int {
	total := 0
	for _, b := range bs {
		total += b.Minutes()
	}
	return total
}
