package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anjiri1684/error_paper/database"
	"github.com/robfig/cron/v3"
)

// SweepResult counts the rows removed by one sweep.
type SweepResult struct {
	PracticeQuestions int64
	PracticeRecords   int64
}

// SweepOrphans deletes practice questions and records whose error question no
// longer exists. Both deletes run in one transaction.
func SweepOrphans(ctx context.Context, store *database.Store) (SweepResult, error) {
	var res SweepResult
	err := store.Transaction(ctx, func(tx *database.Store) error {
		var err error
		res.PracticeQuestions, err = tx.RunQuery(ctx,
			"DELETE FROM practice_questions WHERE error_id NOT IN (SELECT id FROM errors)")
		if err != nil {
			return fmt.Errorf("sweep practice questions: %w", err)
		}
		res.PracticeRecords, err = tx.RunQuery(ctx,
			"DELETE FROM practice_records WHERE error_id NOT IN (SELECT id FROM errors)")
		if err != nil {
			return fmt.Errorf("sweep practice records: %w", err)
		}
		return nil
	})
	if err != nil {
		return SweepResult{}, err
	}
	return res, nil
}

// ScheduleOrphanSweep registers the sweep on c. An empty schedule leaves the job
// unscheduled.
func ScheduleOrphanSweep(c *cron.Cron, schedule string, store *database.Store) error {
	if schedule == "" {
		slog.Info("orphan sweep disabled")
		return nil
	}
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		runSweep(ctx, store)
	})
	if err != nil {
		return fmt.Errorf("schedule orphan sweep %q: %w", schedule, err)
	}
	slog.Info("orphan sweep scheduled", "schedule", schedule)
	return nil
}

func runSweep(ctx context.Context, store *database.Store) {
	slog.Debug("running job: orphan sweep")
	res, err := SweepOrphans(ctx, store)
	if err != nil {
		slog.Error("orphan sweep failed", "error", err)
		return
	}
	if res.PracticeQuestions == 0 && res.PracticeRecords == 0 {
		return
	}
	slog.Info("orphan sweep removed rows",
		"practice_questions", res.PracticeQuestions,
		"practice_records", res.PracticeRecords)
}
