package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	defaultMaxAttempts     = 3
	defaultInitialInterval = time.Second
)

// Limited throttles calls to the wrapped Completer and retries
// rate limited ones with exponential backoff.
type Limited struct {
	Completer       Completer
	Limiter         *rate.Limiter
	MaxAttempts     uint64
	InitialInterval time.Duration
	Logger          *slog.Logger
}

// NewLimited allows one request per interval.
func NewLimited(c Completer, interval time.Duration, logger *slog.Logger) *Limited {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &Limited{
		Completer:       c,
		Limiter:         rate.NewLimiter(limit, 1),
		MaxAttempts:     defaultMaxAttempts,
		InitialInterval: defaultInitialInterval,
		Logger:          logger,
	}
}

func (l *Limited) Name() string { return l.Completer.Name() }

func (l *Limited) Complete(ctx context.Context, prompt string) (string, error) {
	var out string

	op := func() error {
		if err := l.Limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		var err error
		out, err = l.Completer.Complete(ctx, prompt)
		if errors.Is(err, ErrRateLimited) {
			return err
		}

		if err != nil {
			return backoff.Permanent(err)
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.InitialInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0

	attempts := l.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(b, attempts-1), ctx), func(err error, d time.Duration) {
		l.Logger.Warn("ai rate limited; retrying", "provider", l.Completer.Name(), "in", d)
	})
	if err != nil {
		return "", err
	}

	return out, nil
}
