package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/anjiri1684/error_paper/aigen"
	"github.com/anjiri1684/error_paper/database"
	"github.com/anjiri1684/error_paper/models"
	"github.com/anjiri1684/error_paper/utils"
)

const (
	DefaultGenerateCount = 3
	MaxGenerateCount     = 10
	DefaultListLimit     = 50
	MaxListLimit         = 200
)

// PracticeResponse is a practice question as returned to clients.
type PracticeResponse struct {
	ID           string            `json:"id"`
	ErrorID      string            `json:"error_id"`
	QuestionText string            `json:"question_text"`
	Options      []string          `json:"options,omitempty"`
	Difficulty   models.Difficulty `json:"difficulty"`
	Category     string            `json:"category"`
	Subject      models.Subject    `json:"subject"`
	CreatedAt    time.Time         `json:"created_at"`
}

type ListFilter struct {
	Subject  string
	Category string
	Limit    int
	Offset   int
}

// DeleteResult reports whether a delete removed a row.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type PracticeService struct {
	store     *database.Store
	generator QuestionGenerator
}

func NewPracticeService(store *database.Store, generator QuestionGenerator) *PracticeService {
	return &PracticeService{store: store, generator: generator}
}

// Generate creates count practice variants of the error question. The batch
// is written in one transaction, so either every row lands or none does.
func (s *PracticeService) Generate(ctx context.Context, errorID string, count int) ([]PracticeResponse, error) {
	if count == 0 {
		count = DefaultGenerateCount
	}
	if count < 1 || count > MaxGenerateCount {
		return nil, utils.ValidationError("count must be between 1 and 10")
	}

	source, err := findErrorQuestion(ctx, s.store, errorID)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.GeneratePracticeQuestions(ctx, aigen.GenerateParams{
		OriginalQuestion: source.OriginalQuestion,
		Subject:          string(source.Subject),
		Category:         source.Category,
		Difficulty:       string(source.Difficulty),
		Count:            count,
	})
	if err != nil {
		return nil, utils.AdapterError("Failed to generate practice questions", err)
	}
	if len(generated) > count {
		generated = generated[:count]
	}
	if len(generated) == 0 {
		return nil, utils.AdapterError("No practice questions were generated", nil)
	}

	createdAt := utils.Now()
	out := make([]PracticeResponse, 0, len(generated))
	err = s.store.Transaction(ctx, func(tx *database.Store) error {
		// The error may have been removed while the provider was working.
		if _, err := findErrorQuestion(ctx, tx, errorID); err != nil {
			return err
		}
		for _, g := range generated {
			options, err := models.EncodeOptions(g.Options)
			if err != nil {
				return utils.StorageError("Failed to encode practice question options", err)
			}
			row := PracticeResponse{
				ID:           utils.NewID(),
				ErrorID:      source.ID,
				QuestionText: g.Question,
				Options:      g.Options,
				Difficulty:   source.Difficulty,
				Category:     source.Category,
				Subject:      source.Subject,
				CreatedAt:    createdAt,
			}
			_, err = tx.RunQuery(ctx,
				`INSERT INTO practice_questions (id, error_id, question_text, options, difficulty, category, subject, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				row.ID, row.ErrorID, row.QuestionText, options, row.Difficulty, row.Category, row.Subject, row.CreatedAt)
			if err != nil {
				return utils.StorageError("Failed to save practice questions", err)
			}
			out = append(out, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("practice questions generated", "error_id", errorID, "count", len(out))
	return out, nil
}

// ListForError returns the practice questions of one error, newest first.
func (s *PracticeService) ListForError(ctx context.Context, errorID string) ([]PracticeResponse, error) {
	var rows []models.PracticeQuestion
	err := s.store.GetAllRows(ctx, &rows,
		"SELECT "+models.PracticeQuestionColumns+" FROM practice_questions WHERE error_id = ? ORDER BY created_at DESC", errorID)
	if err != nil {
		return nil, utils.StorageError("Failed to fetch practice questions", err)
	}
	return toPracticeResponses(rows)
}

// List returns practice questions across errors, optionally narrowed by
// subject and category, newest first.
func (s *PracticeService) List(ctx context.Context, filter ListFilter) ([]PracticeResponse, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		return nil, utils.ValidationError("limit must be between 1 and 200")
	}
	if filter.Offset < 0 {
		return nil, utils.ValidationError("offset must be 0 or greater")
	}

	query := "SELECT " + models.PracticeQuestionColumns + " FROM practice_questions WHERE 1=1"
	var args []any
	if filter.Subject != "" {
		query += " AND subject = ?"
		args = append(args, filter.Subject)
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	var rows []models.PracticeQuestion
	if err := s.store.GetAllRows(ctx, &rows, query, args...); err != nil {
		return nil, utils.StorageError("Failed to fetch practice questions", err)
	}
	return toPracticeResponses(rows)
}

// Delete removes one practice question. Deleting an unknown id is not an
// error; the result reports whether anything was removed.
func (s *PracticeService) Delete(ctx context.Context, id string) (DeleteResult, error) {
	n, err := s.store.RunQuery(ctx, "DELETE FROM practice_questions WHERE id = ?", id)
	if err != nil {
		return DeleteResult{}, utils.StorageError("Failed to delete practice question", err)
	}
	return DeleteResult{ID: id, Deleted: n > 0}, nil
}

func findErrorQuestion(ctx context.Context, store *database.Store, id string) (*models.ErrorQuestion, error) {
	var q models.ErrorQuestion
	found, err := store.GetRow(ctx, &q, "SELECT "+models.ErrorQuestionColumns+" FROM errors WHERE id = ? LIMIT 1", id)
	if err != nil {
		return nil, utils.StorageError("Failed to fetch error question", err)
	}
	if !found {
		return nil, utils.NotFoundError("Error question not found")
	}
	return &q, nil
}

func toPracticeResponses(rows []models.PracticeQuestion) ([]PracticeResponse, error) {
	out := make([]PracticeResponse, 0, len(rows))
	for _, r := range rows {
		options, err := models.DecodeOptions(r.Options)
		if err != nil {
			return nil, utils.StorageError("Stored practice question options are corrupt", err)
		}
		out = append(out, PracticeResponse{
			ID:           r.ID,
			ErrorID:      r.ErrorID,
			QuestionText: r.QuestionText,
			Options:      options,
			Difficulty:   r.Difficulty,
			Category:     r.Category,
			Subject:      r.Subject,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out, nil
}
