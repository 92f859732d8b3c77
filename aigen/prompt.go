package aigen

import (
	"encoding/json"
	"fmt"
)

const systemPrompt = `You write practice questions for students reviewing a question they answered incorrectly.

The user message is a JSON object describing the original question: its text, subject, category,
difficulty and how many practice questions to write ("count").

Write exactly "count" new questions that exercise the same concept at the same difficulty.
Do not copy the original wording. When the original is multiple choice, give each new question
its own answer options; otherwise return an empty "options" list.

Return ONLY JSON of the form {"questions":[{"question":"...","options":["..."]}]}.`

type promptInput struct {
	OriginalQuestion string `json:"original_question"`
	Subject          string `json:"subject"`
	Category         string `json:"category"`
	Difficulty       string `json:"difficulty"`
	Count            int    `json:"count"`
}

type questionPayload struct {
	Questions []GeneratedQuestion `json:"questions"`
}

var questionSchema = &Schema{
	Name:        "practice-questions",
	Description: "Practice questions generated from a missed question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []string{"question", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	},
}

func buildRequest(params GenerateParams) (Request, error) {
	input, err := json.Marshal(promptInput{
		OriginalQuestion: params.OriginalQuestion,
		Subject:          params.Subject,
		Category:         params.Category,
		Difficulty:       params.Difficulty,
		Count:            params.Count,
	})
	if err != nil {
		return Request{}, fmt.Errorf("encode prompt: %w", err)
	}
	return Request{
		System:      systemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: string(input)}},
		Schema:      questionSchema,
		MaxTokens:   256 * max(params.Count, 1),
		Temperature: 0.7,
	}, nil
}
