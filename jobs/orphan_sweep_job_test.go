package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/anjiri1684/error_paper/models"
	"github.com/anjiri1684/error_paper/testutil"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepOrphans(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()
	testutil.SeedErrorQuestion(t, store, testutil.ErrorQuestion("E1"))

	for id, errorID := range map[string]string{"keep": "E1", "orphan1": "gone", "orphan2": "gone"} {
		testutil.SeedPracticeQuestion(t, store, models.PracticeQuestion{
			ID: id, ErrorID: errorID, QuestionText: "q", Difficulty: models.DifficultyEasy,
			Subject: models.SubjectMath, CreatedAt: time.Now().UTC(),
		})
	}
	for i, errorID := range []string{"E1", "gone"} {
		_, err := store.RunQuery(ctx,
			"INSERT INTO practice_records (id, error_id, question_index, user_answer, created_at) VALUES (?, ?, ?, ?, ?)",
			errorID+"-r", errorID, i, "a", time.Now().UTC())
		require.NoError(t, err)
	}

	res, err := SweepOrphans(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, SweepResult{PracticeQuestions: 2, PracticeRecords: 1}, res)
	assert.EqualValues(t, 1, testutil.Count(t, store, "practice_questions"))
	assert.EqualValues(t, 1, testutil.Count(t, store, "practice_records"))

	res, err = SweepOrphans(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, res)
}

func TestScheduleOrphanSweep(t *testing.T) {
	store := testutil.NewTestStore(t)

	tests := []struct {
		name      string
		schedule  string
		wantJobs  int
		wantError bool
	}{
		{name: "hourly", schedule: "@hourly", wantJobs: 1},
		{name: "disabled", schedule: "", wantJobs: 0},
		{name: "invalid", schedule: "every tuesday", wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cron.New()
			err := ScheduleOrphanSweep(c, tt.schedule, store)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Entries(), tt.wantJobs)
		})
	}
}
