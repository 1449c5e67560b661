package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hako/branca"

	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/id"
)

const DefaultTokenTTL = time.Hour * 24 * 14

var (
	ErrInvalidToken = errs.NewUnauthenticatedError("invalid token")
	ErrExpiredToken = errs.NewUnauthenticatedError("expired token")
)

// Tokens issues and verifies branca tokens carrying a user ID.
type Tokens struct {
	key string
	ttl time.Duration
}

func NewTokens(key string, ttl time.Duration) (*Tokens, error) {
	if len(key) != 32 {
		return nil, errors.New("token key must be exactly 32 bytes long")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{key: key, ttl: ttl}, nil
}

func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

func (t *Tokens) Issue(userID string) (string, error) {
	if !id.Valid(userID) {
		return "", errs.NewInvalidArgumentError("UserID", "User ID is invalid")
	}

	token, err := t.codec().EncodeToString(userID)
	if err != nil {
		return "", fmt.Errorf("could not create token: %w", err)
	}

	return token, nil
}

// UserID decodes the token back into the user ID it was issued for.
func (t *Tokens) UserID(token string) (string, error) {
	userID, err := t.codec().DecodeToString(token)
	if err != nil {
		if errors.Is(err, branca.ErrInvalidToken) || errors.Is(err, branca.ErrInvalidTokenVersion) {
			return "", ErrInvalidToken
		}

		if _, ok := err.(*branca.ErrExpiredToken); ok {
			return "", ErrExpiredToken
		}

		// chacha20poly1305 reports a wrong key this way.
		if strings.HasSuffix(err.Error(), "authentication failed") {
			return "", ErrInvalidToken
		}

		return "", fmt.Errorf("could not decode token: %w", err)
	}

	if !id.Valid(userID) {
		return "", ErrInvalidToken
	}

	return userID, nil
}

func (t *Tokens) codec() *branca.Branca {
	cdc := branca.NewBranca(t.key)
	cdc.SetTTL(uint32(t.ttl.Seconds()))
	return cdc
}
