package ai

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = time.Minute * 10
	defaultErrorTTL  = time.Second * 30
)

// ErrBackoff is returned while a prompt that recently failed
// is being kept away from the provider.
var ErrBackoff = errors.New("ai: completion backoff due to recent error")

// Cached remembers completions by prompt and negative caches failures.
type Cached struct {
	completer Completer
	cacheOK   *lru.LRU[string, string]
	cacheErr  *lru.LRU[string, struct{}]
}

func NewCached(c Completer, size int, successTTL, errorTTL time.Duration) *Cached {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &Cached{
		completer: c,
		cacheOK:   lru.NewLRU[string, string](size, nil, successTTL),
		cacheErr:  lru.NewLRU[string, struct{}](size, nil, errorTTL),
	}
}

func (c *Cached) Name() string { return c.completer.Name() }

func (c *Cached) Complete(ctx context.Context, prompt string) (string, error) {
	if _, found := c.cacheErr.Get(prompt); found {
		return "", ErrBackoff
	}

	if out, found := c.cacheOK.Get(prompt); found {
		return out, nil
	}

	out, err := c.completer.Complete(ctx, prompt)
	if err != nil {
		if ctx.Err() == nil {
			c.cacheErr.Add(prompt, struct{}{})
		}
		return "", err
	}

	c.cacheOK.Add(prompt, out)
	return out, nil
}
