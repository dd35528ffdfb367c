// Package llm connects the flight computer to a hosted language model.
// Every call is a single-turn prompt answered with schema-checked JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider answers one prompt.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Limits applied to every outgoing request.
const (
	DefaultMaxTokens = 256
	MaxTokensCap     = 512
	MaxTemperature   = 1.0
)

// Request is a single-turn prompt.
type Request struct {
	// Purpose labels the call in the event log.
	Purpose string

	System string
	Prompt string

	// Schema, when set, is passed to the backend's structured output mode
	// and the reply is checked against it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// capped returns r with MaxTokens and Temperature forced into range.
func (r Request) capped() Request {
	switch {
	case r.MaxTokens <= 0:
		r.MaxTokens = DefaultMaxTokens
	case r.MaxTokens > MaxTokensCap:
		r.MaxTokens = MaxTokensCap
	}
	r.Temperature = min(max(r.Temperature, 0), MaxTemperature)
	if r.Purpose == "" {
		r.Purpose = "unknown"
	}
	return r
}

// Response is a backend's reply.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the call.
	Model string
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveModel maps a short alias to a model ID. Unknown names pass through.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
