package aigen

import (
	"context"
	"encoding/json"
	"fmt"
)

// OfflineProvider answers without a model by restating the source question.
// It keeps the service usable in development when no API key is configured.
type OfflineProvider struct{}

func (OfflineProvider) Generate(_ context.Context, req Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no prompt to answer")}
	}

	var in promptInput
	if err := json.Unmarshal([]byte(req.Messages[len(req.Messages)-1].Content), &in); err != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("decode prompt: %w", err)}
	}

	out := questionPayload{Questions: make([]GeneratedQuestion, 0, in.Count)}
	for i := 1; i <= in.Count; i++ {
		out.Questions = append(out.Questions, GeneratedQuestion{
			Question: fmt.Sprintf("Practice %d (%s, %s): %s", i, in.Subject, in.Difficulty, in.OriginalQuestion),
			Options:  []string{},
		})
	}

	content, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return &Response{Content: content, Model: "offline"}, nil
}

func (OfflineProvider) ModelID() string { return "offline" }
