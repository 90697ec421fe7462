package session

import "time"

const DefaultQuotaMinutes = 8 * 60

type SessionDetail struct {
	Session
	// End is EndsAt, or the injected now for an open session.
	End             time.Time
	WorkedMinutes   int
	BreakMinutes    int
	OvertimeMinutes int
}

func Compute(s Session, now time.Time, quotaMinutes int) SessionDetail {
	end := s.EffectiveEnd(now)
	worked := ElapsedMinutes(s.StartsAt, end)
	breaks := BreakMinutes(s.Breaks)
	return SessionDetail{
		Session:         s,
		End:             end,
		WorkedMinutes:   worked,
		BreakMinutes:    breaks,
		OvertimeMinutes: worked - breaks - quotaMinutes,
	}
}

func ComputeAll(ss []Session, now time.Time, quotaMinutes int) []SessionDetail {
	ds := make([]SessionDetail, 0, len(ss))
	for _, s := range ss {
		ds = append(ds, Compute(s, now, quotaMinutes))
	}
	return ds
}
