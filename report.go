package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"papershift/config"
	"papershift/papershift"
	"papershift/session"
)

func buildReport(ctx context.Context, injector do.Injector, r papershift.TimeRange, now time.Time) (session.Report, []session.DayAggregate, error) {
	fetcher, err := do.Invoke[papershift.SessionFetcher](injector)
	if err != nil {
		return session.Report{}, nil, err
	}
	logger, err := do.Invoke[*slog.Logger](injector)
	if err != nil {
		return session.Report{}, nil, err
	}
	cfg := do.MustInvoke[*config.Config](injector)
	return summarize(ctx, fetcher, logger, r, now, cfg.QuotaMinutes)
}

// summarize runs the whole pipeline for one range; now stands in for the end
// of every session that is still open.
func summarize(ctx context.Context, fetcher papershift.SessionFetcher, logger *slog.Logger, r papershift.TimeRange, now time.Time, quotaMinutes int) (session.Report, []session.DayAggregate, error) {
	ss, err := fetcher.FetchSessions(ctx, r)
	if err != nil {
		return session.Report{}, nil, err
	}

	days := session.Aggregate(session.ComputeAll(ss, now, quotaMinutes), quotaMinutes)
	report := session.BuildReport(days)
	logger.Debug("built report",
		slog.Int("sessions", len(ss)),
		slog.Int("days", len(days)),
		slog.Int("total_overtime_minutes", report.TotalOvertimeMinutes))
	return report, days, nil
}
