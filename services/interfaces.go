package services

import (
	"context"

	"github.com/anjiri1684/error_paper/aigen"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/services/mock_generator.go -package=mock_services

// QuestionGenerator produces practice variants of a missed question.
type QuestionGenerator interface {
	GeneratePracticeQuestions(ctx context.Context, params aigen.GenerateParams) ([]aigen.GeneratedQuestion, error)
}
