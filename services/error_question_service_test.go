package services

import (
	"context"
	"testing"

	"github.com/anjiri1684/error_paper/models"
	"github.com/anjiri1684/error_paper/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeService_CreateAndGetErrorQuestion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateErrorQuestion(ctx, CreateErrorQuestionParams{
		Subject:          models.SubjectHistory,
		Difficulty:       models.DifficultyHard,
		OriginalQuestion: "When did the Berlin Wall fall?",
		Options:          []string{"1987", "1989", "1991"},
		CorrectAnswer:    "1989",
		Category:         "cold war",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetErrorQuestion(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OriginalQuestion, got.OriginalQuestion)
	assert.Equal(t, []string{"1987", "1989", "1991"}, got.Options)
	assert.Equal(t, models.SubjectHistory, got.Subject)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestPracticeService_CreateErrorQuestionValidation(t *testing.T) {
	tests := []struct {
		name   string
		params CreateErrorQuestionParams
	}{
		{name: "unknown subject", params: CreateErrorQuestionParams{Subject: "Art", Difficulty: models.DifficultyEasy, OriginalQuestion: "q"}},
		{name: "unknown difficulty", params: CreateErrorQuestionParams{Subject: models.SubjectMath, Difficulty: "Brutal", OriginalQuestion: "q"}},
		{name: "empty question", params: CreateErrorQuestionParams{Subject: models.SubjectMath, Difficulty: models.DifficultyEasy}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			_, err := svc.CreateErrorQuestion(context.Background(), tt.params)
			assert.Equal(t, utils.KindValidation, utils.Kind(err))
		})
	}
}

func TestPracticeService_GetErrorQuestionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetErrorQuestion(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.Kind(err))
	assert.Equal(t, "Error question not found", utils.PublicMessage(err))
}
