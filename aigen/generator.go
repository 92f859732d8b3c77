package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
)

// GenerateParams describes the missed question to build variants of.
type GenerateParams struct {
	OriginalQuestion string
	Subject          string
	Category         string
	Difficulty       string
	Count            int
}

// GeneratedQuestion is one candidate practice question. Options is empty when
// the question is not multiple choice.
type GeneratedQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuestionGenerator struct {
	provider   Provider
	timeout    time.Duration
	retries    uint
	retryDelay time.Duration
}

func NewQuestionGenerator(provider Provider, cfg Config) *QuestionGenerator {
	return &QuestionGenerator{
		provider:   provider,
		timeout:    cfg.Timeout,
		retries:    cfg.Retries,
		retryDelay: 500 * time.Millisecond,
	}
}

// GeneratePracticeQuestions asks the provider for params.Count variants and
// returns at most that many.
func (g *QuestionGenerator) GeneratePracticeQuestions(ctx context.Context, params GenerateParams) ([]GeneratedQuestion, error) {
	if params.Count <= 0 {
		return nil, nil
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req, err := buildRequest(params)
	if err != nil {
		return nil, err
	}

	var questions []GeneratedQuestion
	err = retry.Do(
		func() error {
			resp, err := g.provider.Generate(ctx, req)
			if err != nil {
				if !isRetryable(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			var payload questionPayload
			if err := json.Unmarshal(resp.Content, &payload); err != nil {
				return &ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("decode questions: %w", err)}
			}
			questions = payload.Questions
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.retries+1),
		retry.Delay(g.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("retrying practice question generation",
				"attempt", n+1,
				"model", g.provider.ModelID(),
				"error", err)
		}),
	)
	if err != nil {
		slog.Error("practice question generation failed",
			"model", g.provider.ModelID(),
			"subject", params.Subject,
			"count", params.Count,
			"error", err)
		return nil, err
	}

	if len(questions) > params.Count {
		questions = questions[:params.Count]
	}
	return questions, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var (
		rateLimit   *ErrRateLimit
		unavailable *ErrProviderUnavailable
		invalid     *ErrInvalidResponse
	)
	return errors.As(err, &rateLimit) || errors.As(err, &unavailable) || errors.As(err, &invalid)
}
