package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymweeks-session||"
	sessionsSetKey   = "gymweeks-sessions"
)

type Service struct {
	redisClient *redis.Client
	tokens      *TokenIssuer
	ttl         time.Duration
	// ability to inject session id generator (for unit and dev testing)
	NewSessionIDFunc func() string
}

func NewAuthService(
	ttl time.Duration,
	jwtSecret string,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:              ttl,
		tokens:           NewTokenIssuer(jwtSecret, ttl),
		redisClient:      redisClient,
		NewSessionIDFunc: uuid.NewString,
	}
}

// Login opens a new session for the user and returns its signed access token.
func (as *Service) Login(ctx context.Context, userID int, role Role, createdAt time.Time) (string, error) {
	sessionID := as.NewSessionIDFunc()
	token, err := as.tokens.Issue(sessionID, userID, role, createdAt)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + sessionID
	cmdSet := as.redisClient.Set(ctx, sessionKey, createdAt.Unix(), 0)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add session to the set of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, sessionsSetKey, sessionID)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session behind the token. Returns false if it was already gone.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	claims, err := as.tokens.Parse(token)
	if err != nil {
		return false, err
	}

	sessionKey := sessionKeyPrefix + claims.ID
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove session from the set of sessions
	cmdSRem := as.redisClient.SRem(ctx, sessionsSetKey, claims.ID)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, sessionsSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionIDs := cmd.Val()
	if len(sessionIDs) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionIDs))
	var toRemove []string
	for _, sessionID := range sessionIDs {
		cmd := as.redisClient.Get(ctx, sessionKeyPrefix+sessionID)
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// session key gone, only the set member is left
				toRemove = append(toRemove, sessionID)
				continue
			}
			log.Errorf("=> auth service, scan and clean session %s: %s", sessionID, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
		if err != nil {
			log.Errorf("=> auth service, scan and clean session %s: %s", sessionID, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			log.Tracef("=>\twill clean the session: %s", sessionID)
			toRemove = append(toRemove, sessionID)
		}
	}

	for _, sessionID := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
			log.Errorf("=> auth service, clean session %s: %s", sessionID, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, sessionsSetKey, sessionID).Err(); err != nil {
			log.Errorf("=> auth service, clean session %s: %s", sessionID, err)
			continue
		}
	}
}
