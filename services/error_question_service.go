package services

import (
	"context"
	"time"

	"github.com/anjiri1684/error_paper/models"
	"github.com/anjiri1684/error_paper/utils"
)

type CreateErrorQuestionParams struct {
	Subject          models.Subject
	Difficulty       models.Difficulty
	OriginalQuestion string
	Options          []string
	CorrectAnswer    string
	Category         string
}

type ErrorQuestionResponse struct {
	ID               string            `json:"id"`
	Subject          models.Subject    `json:"subject"`
	Difficulty       models.Difficulty `json:"difficulty"`
	OriginalQuestion string            `json:"original_question"`
	Options          []string          `json:"options,omitempty"`
	CorrectAnswer    string            `json:"correct_answer"`
	Category         string            `json:"category"`
	CreatedAt        time.Time         `json:"created_at"`
}

var (
	validSubjects = map[models.Subject]bool{
		models.SubjectMath:       true,
		models.SubjectScience:    true,
		models.SubjectHistory:    true,
		models.SubjectLiterature: true,
	}
	validDifficulties = map[models.Difficulty]bool{
		models.DifficultyEasy:   true,
		models.DifficultyMedium: true,
		models.DifficultyHard:   true,
	}
)

// CreateErrorQuestion records a question the student got wrong.
func (s *PracticeService) CreateErrorQuestion(ctx context.Context, p CreateErrorQuestionParams) (*ErrorQuestionResponse, error) {
	if !validSubjects[p.Subject] {
		return nil, utils.ValidationError("subject must be one of [Math Science History Literature]")
	}
	if !validDifficulties[p.Difficulty] {
		return nil, utils.ValidationError("difficulty must be one of [Easy Medium Hard]")
	}
	if p.OriginalQuestion == "" {
		return nil, utils.ValidationError("original_question is a required field")
	}

	options, err := models.EncodeOptions(p.Options)
	if err != nil {
		return nil, utils.ValidationError("options must be a list of strings")
	}

	q := &ErrorQuestionResponse{
		ID:               utils.NewID(),
		Subject:          p.Subject,
		Difficulty:       p.Difficulty,
		OriginalQuestion: p.OriginalQuestion,
		Options:          p.Options,
		CorrectAnswer:    p.CorrectAnswer,
		Category:         p.Category,
		CreatedAt:        utils.Now(),
	}
	_, err = s.store.RunQuery(ctx,
		`INSERT INTO errors (id, subject, difficulty, original_question, options, correct_answer, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Subject, q.Difficulty, q.OriginalQuestion, options, q.CorrectAnswer, q.Category, q.CreatedAt)
	if err != nil {
		return nil, utils.StorageError("Failed to save error question", err)
	}
	return q, nil
}

func (s *PracticeService) GetErrorQuestion(ctx context.Context, id string) (*ErrorQuestionResponse, error) {
	q, err := findErrorQuestion(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	options, err := models.DecodeOptions(q.Options)
	if err != nil {
		return nil, utils.StorageError("Stored error question options are corrupt", err)
	}
	return &ErrorQuestionResponse{
		ID:               q.ID,
		Subject:          q.Subject,
		Difficulty:       q.Difficulty,
		OriginalQuestion: q.OriginalQuestion,
		Options:          options,
		CorrectAnswer:    q.CorrectAnswer,
		Category:         q.Category,
		CreatedAt:        q.CreatedAt,
	}, nil
}
