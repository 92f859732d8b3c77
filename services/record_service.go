package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/anjiri1684/error_paper/database"
	"github.com/anjiri1684/error_paper/models"
	"github.com/anjiri1684/error_paper/utils"
)

type RecordResponse struct {
	ID            string    `json:"id"`
	ErrorID       string    `json:"error_id"`
	QuestionIndex int       `json:"question_index"`
	UserAnswer    string    `json:"user_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitResult lists the ids of the records created by one submission.
type SubmitResult struct {
	Records []string `json:"records"`
}

// Submit stores one practice record per answer, indexed by its position in
// answers. An empty submission creates nothing and succeeds.
func (s *PracticeService) Submit(ctx context.Context, errorID string, answers []string) (SubmitResult, error) {
	if errorID == "" {
		return SubmitResult{}, utils.ValidationError("error_id is a required field")
	}

	result := SubmitResult{Records: make([]string, 0, len(answers))}
	if len(answers) == 0 {
		return result, nil
	}

	createdAt := utils.Now()
	err := s.store.Transaction(ctx, func(tx *database.Store) error {
		for i, answer := range answers {
			id := utils.NewID()
			_, err := tx.RunQuery(ctx,
				`INSERT INTO practice_records (id, error_id, question_index, user_answer, created_at)
				VALUES (?, ?, ?, ?, ?)`,
				id, errorID, i, answer, createdAt)
			if err != nil {
				return utils.StorageError("Failed to submit practice answers", err)
			}
			result.Records = append(result.Records, id)
		}
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	slog.Info("practice answers submitted", "error_id", errorID, "count", len(result.Records))
	return result, nil
}

// History returns the records of one error, newest first and in submission
// order within a batch.
func (s *PracticeService) History(ctx context.Context, errorID string) ([]RecordResponse, error) {
	var rows []models.PracticeRecord
	err := s.store.GetAllRows(ctx, &rows,
		"SELECT * FROM practice_records WHERE error_id = ? ORDER BY created_at DESC, question_index ASC", errorID)
	if err != nil {
		return nil, utils.StorageError("Failed to fetch practice history", err)
	}

	out := make([]RecordResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecordResponse(r))
	}
	return out, nil
}

// Stats returns the learning_stats projection, one row per error question.
func (s *PracticeService) Stats(ctx context.Context) ([]models.LearningStat, error) {
	stats := []models.LearningStat{}
	if err := s.store.GetAllRows(ctx, &stats, "SELECT * FROM learning_stats ORDER BY subject, error_id"); err != nil {
		return nil, utils.StorageError("Failed to fetch learning stats", err)
	}
	return stats, nil
}
