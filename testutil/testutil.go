// Package testutil builds in-memory stores and seed rows for tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/anjiri1684/error_paper/database"
	"github.com/anjiri1684/error_paper/models"
	"github.com/stretchr/testify/require"
)

// NewTestStore returns a migrated in-memory sqlite store that is closed when
// the test ends.
func NewTestStore(t testing.TB) *database.Store {
	t.Helper()
	db, err := database.Connect(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return database.NewStore(db)
}

// ErrorQuestion returns a seedable Math question with the given id.
func ErrorQuestion(id string) models.ErrorQuestion {
	return models.ErrorQuestion{
		ID:               id,
		Subject:          models.SubjectMath,
		Difficulty:       models.DifficultyEasy,
		OriginalQuestion: "What is 7 x 8?",
		CorrectAnswer:    "56",
		Category:         "multiplication",
		CreatedAt:        time.Now().UTC(),
	}
}

func SeedErrorQuestion(t testing.TB, store *database.Store, q models.ErrorQuestion) {
	t.Helper()
	_, err := store.RunQuery(context.Background(),
		`INSERT INTO errors (id, subject, difficulty, original_question, options, correct_answer, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Subject, q.Difficulty, q.OriginalQuestion, q.Options, q.CorrectAnswer, q.Category, q.CreatedAt)
	require.NoError(t, err)
}

func SeedPracticeQuestion(t testing.TB, store *database.Store, q models.PracticeQuestion) {
	t.Helper()
	_, err := store.RunQuery(context.Background(),
		`INSERT INTO practice_questions (id, error_id, question_text, options, difficulty, category, subject, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.ErrorID, q.QuestionText, q.Options, q.Difficulty, q.Category, q.Subject, q.CreatedAt)
	require.NoError(t, err)
}

// Count returns the number of rows in table.
func Count(t testing.TB, store *database.Store, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, store.DB().Table(table).Count(&n).Error)
	return n
}
