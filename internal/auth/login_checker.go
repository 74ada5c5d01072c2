package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrSessionExpired = errors.New("session expired or logged out")

type LoginChecker struct {
	ttl         time.Duration
	tokens      *TokenIssuer
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, jwtSecret string, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		tokens:      NewTokenIssuer(jwtSecret, ttl),
		redisClient: redisClient,
	}
}

// Check verifies the token signature and that its session is still alive.
func (lc *LoginChecker) Check(ctx context.Context, token string) (*Session, error) {
	claims, err := lc.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	cmd := lc.redisClient.Get(ctx, sessionKeyPrefix+claims.ID)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created at: %w", err)
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > lc.ttl {
		return nil, ErrSessionExpired
	}

	return &Session{
		ID:        claims.ID,
		UserID:    claims.UserID,
		Role:      claims.Role,
		CreatedAt: createdAt,
	}, nil
}
