package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day, hour, min int) time.Time {
	return time.Date(2024, 1, day, hour, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCompute_ClosedSessionWithBreak(t *testing.T) {
	s := Session{
		ID:       1,
		StartsAt: at(1, 9, 0),
		EndsAt:   timePtr(at(1, 17, 30)),
		Breaks: []Break{
			{StartsAt: timePtr(at(1, 12, 0)), EndsAt: timePtr(at(1, 12, 30))},
		},
	}

	d := Compute(s, at(5, 0, 0), DefaultQuotaMinutes)

	assert.Equal(t, 510, d.WorkedMinutes)
	assert.Equal(t, 30, d.BreakMinutes)
	assert.Equal(t, 0, d.OvertimeMinutes)
	assert.Equal(t, at(1, 17, 30), d.End)
}

func TestCompute_OpenSessionUsesNow(t *testing.T) {
	s := Session{ID: 1, StartsAt: at(1, 9, 0)}
	now := s.StartsAt.Add(45 * time.Minute)

	d := Compute(s, now, DefaultQuotaMinutes)

	assert.Equal(t, 45, d.WorkedMinutes)
	assert.Equal(t, 45-DefaultQuotaMinutes, d.OvertimeMinutes)
	assert.Equal(t, now, d.End)
}

func TestCompute_OpenBreakCountsNothing(t *testing.T) {
	s := Session{
		ID:       1,
		StartsAt: at(1, 9, 0),
		Breaks:   []Break{{StartsAt: timePtr(at(1, 10, 0))}},
	}

	d := Compute(s, at(1, 11, 0), 60)

	assert.Equal(t, 120, d.WorkedMinutes)
	assert.Equal(t, 0, d.BreakMinutes)
	assert.Equal(t, 60, d.OvertimeMinutes)
}

func TestComputeAll(t *testing.T) {
	ss := []Session{
		{ID: 1, StartsAt: at(1, 9, 0), EndsAt: timePtr(at(1, 10, 0))},
		{ID: 2, StartsAt: at(2, 9, 0), EndsAt: timePtr(at(2, 11, 0))},
	}

	ds := ComputeAll(ss, at(3, 0, 0), 0)

	assert.Len(t, ds, 2)
	assert.Equal(t, int64(1), ds[0].ID)
	assert.Equal(t, 60, ds[0].OvertimeMinutes)
	assert.Equal(t, 120, ds[1].OvertimeMinutes)
}

func TestSessionState(t *testing.T) {
	closed := Session{StartsAt: at(1, 9, 0), EndsAt: timePtr(at(1, 10, 0))}
	working := Session{StartsAt: at(1, 9, 0)}
	breaking := Session{
		StartsAt: at(1, 9, 0),
		Breaks:   []Break{{StartsAt: timePtr(at(1, 9, 30))}},
	}

	assert.Equal(t, StateOff, closed.State())
	assert.Equal(t, StateWorking, working.State())
	assert.Equal(t, StateBreaking, breaking.State())
}
