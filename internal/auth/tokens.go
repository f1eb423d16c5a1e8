package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

// TokenStore keeps issued bearer tokens in redis so a restart does not
// log everyone out.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

func tokenKey(token string) string {
	return "auth:token:" + token
}

// Issue mints a fresh opaque token for the session.
func (s *TokenStore) Issue(ctx context.Context, session Session) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, tokenKey(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

// Resolve looks a token up and refreshes its TTL on hit.
func (s *TokenStore) Resolve(ctx context.Context, token string) (Session, error) {
	payload, err := s.client.GetEx(ctx, tokenKey(token), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, fmt.Errorf("token: %w", httpx.ErrUnauthorized)
	}
	if err != nil {
		return Session{}, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Revoke drops the token. Revoking an unknown token is not an error.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}
