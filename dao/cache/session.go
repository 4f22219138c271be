package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tuiter/config"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

// SessionStorage maps a session token to the authenticated user id.
// Redis is the source of truth; a local concurrent map shortcuts the
// lookup done on every request. Local entries carry the redis deadline,
// so a session expires here at the same moment the redis key does.
type SessionStorage struct {
	redis  *redis.Client
	config *config.Config
	local  cmap.ConcurrentMap[string, localSession]
}

type localSession struct {
	uid      int64
	expireAt time.Time
}

func NewSessionStorage(redis *redis.Client, config *config.Config) *SessionStorage {
	return &SessionStorage{
		redis:  redis,
		config: config,
		local:  cmap.New[localSession](),
	}
}

func (s *SessionStorage) key(token string) string {
	return fmt.Sprintf("tuiter:session:%s", token)
}

// Create issues a new session token for the user.
func (s *SessionStorage) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	ttl := time.Duration(s.config.Session.Hours()) * time.Hour
	if err := s.redis.Set(ctx, s.key(token), userID, ttl).Err(); err != nil {
		return "", err
	}
	s.local.Set(token, localSession{uid: userID, expireAt: time.Now().Add(ttl)})
	return token, nil
}

// UserID resolves a token to a user id. Returns 0 with no error when the
// session is absent or expired.
func (s *SessionStorage) UserID(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	if entry, ok := s.local.Get(token); ok {
		if time.Now().Before(entry.expireAt) {
			return entry.uid, nil
		}
		s.local.Remove(token)
	}

	// value and remaining TTL in one round trip, the TTL bounds the re-cache
	pipe := s.redis.Pipeline()
	getCmd := pipe.Get(ctx, s.key(token))
	ttlCmd := pipe.PTTL(ctx, s.key(token))
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return 0, err
	}
	val, err := getCmd.Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	uid, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	if ttl, err := ttlCmd.Result(); err == nil && ttl > 0 {
		s.local.Set(token, localSession{uid: uid, expireAt: time.Now().Add(ttl)})
	}
	return uid, nil
}

// Destroy drops the session everywhere.
func (s *SessionStorage) Destroy(ctx context.Context, token string) error {
	s.local.Remove(token)
	return s.redis.Del(ctx, s.key(token)).Err()
}
