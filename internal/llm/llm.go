// File path: internal/llm/llm.go

// Package llm selects and configures the chat-completion provider used by
// the narrative layer. The process-wide default credential is read once at
// startup; per-request credentials build short-lived clients that take
// precedence.
package llm

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/llm/providers"
)

type Message = providers.Message

type ChatRequest = providers.ChatRequest

type Provider = providers.Provider

const (
	defaultEndpoint  = "https://openrouter.ai/api/v1"
	defaultChatModel = "deepseek/deepseek-chat-v3-0324:free"
	defaultTimeout   = 30 * time.Second
	clientTitle      = "Advanced Jafr Analysis System"
)

// Config holds the resolved provider settings. APIKey is the server default;
// WithKey derives a per-request copy when the caller supplies its own.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Referer string
}

// LoadConfig resolves the provider configuration from the environment.
// OPENROUTER_API_KEY takes precedence over OPENAI_API_KEY, matching the
// OpenRouter-first deployment.
func LoadConfig() Config {
	logger := common.Logger()
	cfg := Config{
		APIKey:  strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		BaseURL: strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")),
		Model:   strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL")),
		Referer: strings.TrimSpace(os.Getenv("APP_PUBLIC_URL")),
		Timeout: defaultTimeout,
	}
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = defaultChatModel
	}
	if cfg.Referer == "" {
		cfg.Referer = "http://localhost:5000"
	}
	if timeoutStr := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			logger.Warn("llm: invalid OPENAI_HTTP_TIMEOUT, using default", "value", timeoutStr, "error", err)
		} else {
			cfg.Timeout = timeout
		}
	}
	return cfg
}

// WithKey returns a copy of the configuration using the caller-supplied
// credential instead of the server default.
func (c Config) WithKey(apiKey string) Config {
	out := c
	out.APIKey = strings.TrimSpace(apiKey)
	return out
}

func (c Config) clientConfig() providers.ClientConfig {
	return providers.ClientConfig{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Model:   c.Model,
		Timeout: c.Timeout,
		Headers: map[string]string{
			"HTTP-Referer": c.Referer,
			"X-Title":      clientTitle,
		},
	}
}

// NewProvider builds the provider for the given configuration. Without a
// credential the unconfigured provider is returned and every chat call
// routes straight to the caller's fallback path.
func NewProvider(cfg Config) Provider {
	logger := common.Logger()
	if cfg.APIKey == "" {
		logger.Warn("llm: no api key configured; narratives will use offline fallbacks")
		return providers.NewUnconfiguredProvider()
	}
	logger.Info("llm: openai-compatible provider selected", "model", cfg.Model)
	return providers.NewOpenAIProvider(cfg.clientConfig())
}

// CheckKey performs a lightweight authenticated call against the configured
// endpoint to validate a credential.
func CheckKey(ctx context.Context, cfg Config, apiKey string) error {
	trimmed := strings.TrimSpace(apiKey)
	if trimmed == "" {
		return providers.ErrNoCredential
	}
	client := providers.NewOpenAIProvider(cfg.WithKey(trimmed).clientConfig())
	return client.Ping(ctx)
}
