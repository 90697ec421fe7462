package papershift

import (
	"time"

	"papershift/session"
)

type workingSessionsPage struct {
	WorkingSessions []workingSession `json:"working_sessions"`
	NextPage        string           `json:"next_page"`
}

type workingSession struct {
	ID       int64           `json:"id"`
	StartsAt *time.Time      `json:"starts_at"`
	EndsAt   *time.Time      `json:"ends_at"`
	Breaks   []session.Break `json:"breaks"`
}

func (ws workingSession) toSession() (session.Session, bool) {
	if ws.StartsAt == nil {
		return session.Session{}, false
	}
	return session.Session{
		ID:       ws.ID,
		StartsAt: *ws.StartsAt,
		EndsAt:   ws.EndsAt,
		Breaks:   ws.Breaks,
	}, true
}

// accumulator collects sessions across pages, keeping the first copy of
// every id.
type accumulator struct {
	seen     map[int64]struct{}
	sessions []session.Session
}

func newAccumulator() accumulator {
	return accumulator{seen: make(map[int64]struct{})}
}

func (a accumulator) add(s session.Session) accumulator {
	if _, ok := a.seen[s.ID]; ok {
		return a
	}
	a.seen[s.ID] = struct{}{}
	a.sessions = append(a.sessions, s)
	return a
}
