// File path: internal/llm/providers/unconfigured.go
package providers

import (
	"context"
	"errors"
)

// ErrNoCredential is returned by the unconfigured provider so callers route
// to their deterministic fallbacks without waiting on a network call.
var ErrNoCredential = errors.New("no ai credential configured")

// UnconfiguredProvider stands in when no credential is available. Chat fails
// immediately; the narrative layer turns that failure into offline content.
type UnconfiguredProvider struct{}

func NewUnconfiguredProvider() *UnconfiguredProvider {
	return &UnconfiguredProvider{}
}

func (u *UnconfiguredProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	return "", ErrNoCredential
}

func (u *UnconfiguredProvider) Name() string {
	return "unconfigured"
}
