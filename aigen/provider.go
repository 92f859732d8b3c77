// Package aigen generates practice variants of a missed question with an
// external text-generation model.
package aigen

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt to a model and returns its structured output.
type Provider interface {
	// Generate returns the model output. When req.Schema is set the content
	// has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string
}

type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema the model output must satisfy.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
