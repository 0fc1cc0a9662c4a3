// File path: internal/llm/providers/openai_client.go
package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/jafrlab/jafr/internal/common"
)

// OpenAIProvider speaks the OpenAI chat-completion protocol against any
// compatible endpoint (OpenRouter in the default configuration).
type OpenAIProvider struct {
	client    openai.Client
	chatModel string
}

// ClientConfig carries the transport-level settings for an OpenAI-compatible
// client.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Headers map[string]string
}

func NewOpenAIProvider(cfg ClientConfig) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	for key, value := range cfg.Headers {
		opts = append(opts, option.WithHeader(key, value))
	}
	logger := common.Logger()
	logger.Debug("llm: openai-compatible provider configured", "model", cfg.Model, "endpoint", cfg.BaseURL)
	return &OpenAIProvider{client: openai.NewClient(opts...), chatModel: cfg.Model}
}

func (o *OpenAIProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	logger := common.Logger()
	params := openai.ChatCompletionNewParams{Model: shared.ChatModel(o.chatModel)}
	for _, msg := range req.Messages {
		switch strings.ToLower(msg.Role) {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	if req.JSONObject {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	logger.Debug("llm: sending chat completion request", "model", o.chatModel, "messages", len(req.Messages))
	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty completion content")
	}
	logger.Debug("llm: chat completion succeeded")
	return content, nil
}

// Ping performs a lightweight authenticated call to verify the credential
// without mutating any state.
func (o *OpenAIProvider) Ping(ctx context.Context) error {
	_, err := o.client.Models.List(ctx)
	return err
}

func (o *OpenAIProvider) Name() string {
	return "openai"
}
