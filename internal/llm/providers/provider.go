// File path: internal/llm/providers/provider.go
package providers

import "context"

type Message struct {
	Role    string
	Content string
}

// ChatRequest carries one chat completion call. Temperature and MaxTokens
// are forwarded only when set; JSONObject asks the remote model for a strict
// JSON object reply.
type ChatRequest struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int64
	JSONObject  bool
}

type Provider interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
	Name() string
}
