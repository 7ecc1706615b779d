package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailyReportJob logs the previous day's dispatch activity every morning.
// Runs at 06:00 so the numbers cover a complete calendar day.
type DailyReportJob struct {
	handler queries.GetDispatchSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyReportJob creates a new job for daily dispatch reporting.
// Uses GetDispatchSummaryQueryHandler to aggregate the previous day's counts.
func NewDailyReportJob(handler queries.GetDispatchSummaryQueryHandler, logger *slog.Logger) *DailyReportJob {
	return &DailyReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "daily_report_job"),
	}
}

// Start schedules the report job at 06:00 every day.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started (running at 06:00)")
	return nil
}

// Run aggregates and logs the previous day's dispatch summary.
func (j *DailyReportJob) Run(ctx context.Context) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	query, err := queries.NewGetDispatchSummaryQuery(yesterday)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report job failed to build query", "error", err)
		return
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily dispatch report",
		"date", summary.Date.Format("2006-01-02"),
		"dispatches", summary.Dispatches,
		"pulls", summary.Pulls,
		"sacked_packages", summary.SackedPackages,
		"loose_packages", summary.LoosePackages,
		"total_packages", summary.TotalPackages,
	)
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
