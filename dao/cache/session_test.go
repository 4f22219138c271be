package cache

import (
	"context"
	"testing"
	"time"

	"tuiter/config"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStorage points redis at a closed port: any lookup that reaches
// redis in these tests errors instead of answering.
func newTestStorage() *SessionStorage {
	return &SessionStorage{
		redis:  redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}),
		config: &config.Config{Session: &config.Session{}},
		local:  cmap.New[localSession](),
	}
}

func TestUserIDLocalHit(t *testing.T) {
	s := newTestStorage()
	s.local.Set("tok", localSession{uid: 7, expireAt: time.Now().Add(time.Hour)})

	uid, err := s.UserID(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(7), uid)
}

func TestUserIDExpiredLocalEntryNotServed(t *testing.T) {
	s := newTestStorage()
	s.local.Set("tok", localSession{uid: 7, expireAt: time.Now().Add(-time.Minute)})

	uid, err := s.UserID(context.Background(), "tok")
	assert.Error(t, err, "an expired entry must fall through to redis")
	assert.Zero(t, uid)

	_, ok := s.local.Get("tok")
	assert.False(t, ok, "stale entry must be dropped")
}

func TestUserIDEmptyToken(t *testing.T) {
	s := newTestStorage()

	uid, err := s.UserID(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, uid)
}
