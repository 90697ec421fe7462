package session

import "time"

type Session struct {
	ID       int64      `json:"id"`
	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Breaks   []Break    `json:"breaks"`
}

// EffectiveEnd returns EndsAt, or now while the session is still open.
func (s Session) EffectiveEnd(now time.Time) time.Time {
	if s.EndsAt == nil {
		return now
	}
	return *s.EndsAt
}

func (s Session) IsOpen() bool {
	return s.EndsAt == nil
}

func (s Session) State() State {
	if !s.IsOpen() {
		return StateOff
	}
	for _, b := range s.Breaks {
		if b.StartsAt != nil && b.EndsAt == nil {
			return StateBreaking
		}
	}
	return StateWorking
}
