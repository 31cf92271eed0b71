package jobs

import (
	"context"
	"log/slog"
	"time"

	"bakehouse/internal/core/application/usecases/queries"
	"bakehouse/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// reportHorizonDays is how many days past today the morning report covers.
const reportHorizonDays = 6

// OccupancyReportJob logs a morning occupancy report for the coming week.
// Runs once a day at 06:00 so the production team sees load before the
// ovens start.
type OccupancyReportJob struct {
	handler queries.GetCalendarSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOccupancyReportJob creates the daily occupancy report job.
// Uses GetCalendarSummaryQueryHandler to tally the next seven days.
func NewOccupancyReportJob(
	handler queries.GetCalendarSummaryQueryHandler,
	logger *slog.Logger,
	now func() time.Time,
) *OccupancyReportJob {
	return &OccupancyReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "occupancy_report_job"),
		now:     now,
	}
}

// Start schedules the report for 06:00 every day.
func (j *OccupancyReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy report job started (running daily at 06:00)")
	return nil
}

// Stop stops the occupancy report job.
func (j *OccupancyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Occupancy report job stopped")
}

func (j *OccupancyReportJob) report() {
	ctx := context.Background()

	from := kernel.DateFromTime(j.now())
	to := from.AddDays(reportHorizonDays)

	query, err := queries.NewGetCalendarSummaryQuery(from, to)
	if err != nil {
		j.logger.ErrorContext(ctx, "Occupancy report job failed", "error", err)
		return
	}

	summaries, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Occupancy report job failed", "error", err)
		return
	}

	for _, summary := range summaries {
		occupation := 0.0
		if summary.MaxUnits > 0 {
			occupation = float64(summary.TotalUnits) / float64(summary.MaxUnits) * 100
		}

		j.logger.InfoContext(ctx, "Daily occupancy",
			"date", summary.Date.String(),
			"orders", summary.OrderCount,
			"units", summary.TotalUnits,
			"max_units", summary.MaxUnits,
			"occupation_percent", occupation,
		)
	}
}
