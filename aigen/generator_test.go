package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(p Provider, retries uint) *QuestionGenerator {
	g := NewQuestionGenerator(p, Config{Timeout: time.Second, Retries: retries})
	g.retryDelay = time.Millisecond
	return g
}

var sampleParams = GenerateParams{
	OriginalQuestion: "What is 7 x 8?",
	Subject:          "Math",
	Category:         "multiplication",
	Difficulty:       "Easy",
	Count:            2,
}

func TestQuestionGenerator_GeneratePracticeQuestions(t *testing.T) {
	valid := json.RawMessage(`{"questions":[
		{"question":"What is 6 x 8?","options":["42","48","54"]},
		{"question":"What is 7 x 9?","options":[]},
		{"question":"What is 8 x 8?","options":[]}
	]}`)

	tests := []struct {
		name      string
		responses []MockResponse
		retries   uint
		want      []GeneratedQuestion
		wantCalls int
		assertErr func(t *testing.T, err error)
	}{
		{
			name:      "trims to requested count",
			responses: []MockResponse{{Content: valid}},
			want: []GeneratedQuestion{
				{Question: "What is 6 x 8?", Options: []string{"42", "48", "54"}},
				{Question: "What is 7 x 9?", Options: []string{}},
			},
			wantCalls: 1,
		},
		{
			name: "retries invalid output",
			responses: []MockResponse{
				{Content: json.RawMessage(`{"questions":"nope"}`)},
				{Content: valid},
			},
			retries:   1,
			wantCalls: 2,
			want: []GeneratedQuestion{
				{Question: "What is 6 x 8?", Options: []string{"42", "48", "54"}},
				{Question: "What is 7 x 9?", Options: []string{}},
			},
		},
		{
			name: "retries rate limits until exhausted",
			responses: []MockResponse{
				{Err: &ErrRateLimit{Err: errors.New("429")}},
				{Err: &ErrRateLimit{Err: errors.New("429")}},
			},
			retries:   1,
			wantCalls: 2,
			assertErr: func(t *testing.T, err error) {
				var rl *ErrRateLimit
				assert.ErrorAs(t, err, &rl)
			},
		},
		{
			name:      "does not retry unknown errors",
			responses: []MockResponse{{Err: errors.New("bad request")}, {Content: valid}},
			retries:   2,
			wantCalls: 1,
			assertErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "bad request")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			g := newTestGenerator(mock, tt.retries)

			got, err := g.GeneratePracticeQuestions(context.Background(), sampleParams)
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.assertErr != nil {
				require.Error(t, err)
				tt.assertErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionGenerator_SendsQuestionContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	g := newTestGenerator(mock, 0)

	got, err := g.GeneratePracticeQuestions(context.Background(), sampleParams)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.Len(t, mock.Calls, 1)
	call := mock.Calls[0]
	assert.Equal(t, questionSchema, call.Schema)
	require.Len(t, call.Messages, 1)

	var in promptInput
	require.NoError(t, json.Unmarshal([]byte(call.Messages[0].Content), &in))
	assert.Equal(t, promptInput{
		OriginalQuestion: "What is 7 x 8?",
		Subject:          "Math",
		Category:         "multiplication",
		Difficulty:       "Easy",
		Count:            2,
	}, in)
}

func TestQuestionGenerator_ZeroCount(t *testing.T) {
	mock := NewMockProvider()
	g := newTestGenerator(mock, 0)

	got, err := g.GeneratePracticeQuestions(context.Background(), GenerateParams{Count: 0})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, mock.CallCount())
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, &ErrProviderUnavailable{Err: ctx.Err()}
}

func (slowProvider) ModelID() string { return "slow" }

func TestQuestionGenerator_Timeout(t *testing.T) {
	g := NewQuestionGenerator(slowProvider{}, Config{Timeout: 20 * time.Millisecond, Retries: 3})

	start := time.Now()
	_, err := g.GeneratePracticeQuestions(context.Background(), sampleParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestOfflineProvider(t *testing.T) {
	g := newTestGenerator(OfflineProvider{}, 0)

	got, err := g.GeneratePracticeQuestions(context.Background(), sampleParams)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Practice 1 (Math, Easy): What is 7 x 8?", got[0].Question)
	assert.Empty(t, got[1].Options)
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantID  string
		wantErr bool
	}{
		{name: "offline", cfg: Config{Provider: "offline"}, wantID: "offline"},
		{name: "openai", cfg: Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini"}}, wantID: "gpt-4o-mini"},
		{name: "anthropic alias", cfg: Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k", Model: "claude-haiku"}}, wantID: "claude-haiku-4-5-20251001"},
		{name: "openai without key", cfg: Config{Provider: "openai"}, wantErr: true},
		{name: "unknown", cfg: Config{Provider: "llama"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(context.Background(), tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.ModelID())
		})
	}
}
