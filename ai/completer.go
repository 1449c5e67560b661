// Package ai wraps text completion providers behind a single interface.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrRateLimited is returned by providers when the upstream API
// rejected the request for exceeding its quota.
var ErrRateLimited = errors.New("ai: rate limited")

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider in logs and metrics.
	Name() string
}

type Config struct {
	APIKey       string
	Model        string
	UseMock      bool
	RateInterval time.Duration
	Logger       *slog.Logger
}

// New picks Gemini when an API key is configured and mock mode is off,
// and the canned Mock otherwise. Real providers are rate limited and cached.
func New(ctx context.Context, cfg Config) (Completer, error) {
	if cfg.UseMock || cfg.APIKey == "" {
		return Mock{}, nil
	}

	gemini, err := NewGemini(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("could not create gemini completer: %w", err)
	}

	limited := NewLimited(gemini, cfg.RateInterval, cfg.Logger)

	return NewCached(limited, defaultCacheSize, defaultCacheTTL, defaultErrorTTL), nil
}
