package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between the assessment core and a generative-AI
// backend. Implementations send one request and return the model's output as
// JSON. Decorators (retry, timeout, logging, metrics) also implement Provider.
type Provider interface {
	// Generate sends req and returns the response. When req.Schema is set the
	// returned Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request is a single-shot generation request.
type Request struct {
	// System sets the model's role and ground rules.
	System string

	// Messages holds the conversation. Assessment calls send one user message.
	Messages []Message

	// Schema asks the provider for structured output. Nil means free text,
	// returned as raw bytes in Response.Content.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default in place.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response must conform to.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "ksa-quiz". OpenAI uses it as the
	// schema name and the validator uses it as the compile cache key.
	Name string

	// Description is sent to providers that accept one.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response is the provider output.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may differ
	// from ModelID when the provider resolves aliases.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
