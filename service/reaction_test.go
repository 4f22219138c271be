package service

import (
	"context"
	"sync"
	"testing"

	"tuiter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	userID int64
	tuitID int64
}

// fakeReactions is an in-memory reactionStore backed by a row set.
type fakeReactions struct {
	rows map[pair]bool
}

func newFakeReactions(pairs ...pair) *fakeReactions {
	f := &fakeReactions{rows: make(map[pair]bool)}
	for _, p := range pairs {
		f.rows[p] = true
	}
	return f
}

func (f *fakeReactions) Exists(_ context.Context, userID, tuitID int64) (bool, error) {
	return f.rows[pair{userID, tuitID}], nil
}

func (f *fakeReactions) CountByTuit(_ context.Context, tuitID int64) (int64, error) {
	var n int64
	for p := range f.rows {
		if p.tuitID == tuitID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReactions) CreatePair(_ context.Context, userID, tuitID int64) error {
	f.rows[pair{userID, tuitID}] = true
	return nil
}

func (f *fakeReactions) DeletePair(_ context.Context, userID, tuitID int64) error {
	delete(f.rows, pair{userID, tuitID})
	return nil
}

type fakeTuits struct {
	tuits map[int64]*models.Tuit
}

func newFakeTuits(tuits ...*models.Tuit) *fakeTuits {
	f := &fakeTuits{tuits: make(map[int64]*models.Tuit)}
	for _, t := range tuits {
		f.tuits[t.ID] = t
	}
	return f
}

func (f *fakeTuits) FindByID(_ context.Context, tuitID int64) (*models.Tuit, error) {
	return f.tuits[tuitID], nil
}

func (f *fakeTuits) UpdateStats(_ context.Context, tuitID int64, stats models.Stats) error {
	f.tuits[tuitID].Stats = stats
	return nil
}

func newTestReactionService(likes, dislikes *fakeReactions, tuits *fakeTuits) *ReactionService {
	return &ReactionService{
		likes:    likes,
		dislikes: dislikes,
		tuits:    tuits,
	}
}

func TestToggleLikeFirstLike(t *testing.T) {
	likes := newFakeReactions()
	dislikes := newFakeReactions()
	tuits := newFakeTuits(&models.Tuit{
		ID:    100,
		Stats: models.Stats{Replies: 3, Retuits: 2},
	})
	svc := newTestReactionService(likes, dislikes, tuits)

	require.NoError(t, svc.ToggleLike(context.Background(), 1, 100))

	assert.True(t, likes.rows[pair{1, 100}])
	got := tuits.tuits[100].Stats
	assert.Equal(t, int64(1), got.Likes)
	assert.Equal(t, int64(0), got.Dislikes)
	// replies and retuits ride along untouched
	assert.Equal(t, int64(3), got.Replies)
	assert.Equal(t, int64(2), got.Retuits)
}

func TestToggleLikeTwiceRoundTrips(t *testing.T) {
	likes := newFakeReactions()
	dislikes := newFakeReactions()
	tuits := newFakeTuits(&models.Tuit{ID: 100})
	svc := newTestReactionService(likes, dislikes, tuits)

	ctx := context.Background()
	require.NoError(t, svc.ToggleLike(ctx, 1, 100))
	require.NoError(t, svc.ToggleLike(ctx, 1, 100))

	assert.False(t, likes.rows[pair{1, 100}])
	assert.Equal(t, models.Stats{}, tuits.tuits[100].Stats)
}

func TestToggleLikeRetractsDislike(t *testing.T) {
	likes := newFakeReactions()
	dislikes := newFakeReactions(pair{1, 100})
	tuits := newFakeTuits(&models.Tuit{
		ID:    100,
		Stats: models.Stats{Dislikes: 1},
	})
	svc := newTestReactionService(likes, dislikes, tuits)

	require.NoError(t, svc.ToggleLike(context.Background(), 1, 100))

	assert.True(t, likes.rows[pair{1, 100}])
	assert.False(t, dislikes.rows[pair{1, 100}], "establishing a like retracts the dislike")
	got := tuits.tuits[100].Stats
	assert.Equal(t, int64(1), got.Likes)
	assert.Equal(t, int64(0), got.Dislikes)
}

func TestToggleLikeRemovalLeavesDislikeAlone(t *testing.T) {
	// Removing a like only undoes the like. An existing dislike row and its
	// counter stay as they are.
	likes := newFakeReactions(pair{1, 100})
	dislikes := newFakeReactions(pair{1, 100})
	tuits := newFakeTuits(&models.Tuit{
		ID:    100,
		Stats: models.Stats{Likes: 1, Dislikes: 1},
	})
	svc := newTestReactionService(likes, dislikes, tuits)

	require.NoError(t, svc.ToggleLike(context.Background(), 1, 100))

	assert.False(t, likes.rows[pair{1, 100}])
	assert.True(t, dislikes.rows[pair{1, 100}])
	got := tuits.tuits[100].Stats
	assert.Equal(t, int64(0), got.Likes)
	assert.Equal(t, int64(1), got.Dislikes)
}

func TestToggleDislikeMirrors(t *testing.T) {
	likes := newFakeReactions(pair{1, 100})
	dislikes := newFakeReactions()
	tuits := newFakeTuits(&models.Tuit{
		ID:    100,
		Stats: models.Stats{Likes: 1},
	})
	svc := newTestReactionService(likes, dislikes, tuits)

	require.NoError(t, svc.ToggleDislike(context.Background(), 1, 100))

	assert.True(t, dislikes.rows[pair{1, 100}])
	assert.False(t, likes.rows[pair{1, 100}])
	got := tuits.tuits[100].Stats
	assert.Equal(t, int64(1), got.Dislikes)
	assert.Equal(t, int64(0), got.Likes)
}

func TestToggleLikeMissingTuit(t *testing.T) {
	svc := newTestReactionService(newFakeReactions(), newFakeReactions(), newFakeTuits())

	err := svc.ToggleLike(context.Background(), 1, 999)
	require.ErrorIs(t, err, ErrTuitNotFound)
}

func TestToggleSequenceLikeThenDislikeTwice(t *testing.T) {
	likes := newFakeReactions()
	dislikes := newFakeReactions()
	tuits := newFakeTuits(&models.Tuit{ID: 100})
	svc := newTestReactionService(likes, dislikes, tuits)

	ctx := context.Background()
	require.NoError(t, svc.ToggleLike(ctx, 1, 100))
	require.NoError(t, svc.ToggleDislike(ctx, 1, 100))
	require.NoError(t, svc.ToggleDislike(ctx, 1, 100))

	assert.False(t, likes.rows[pair{1, 100}])
	assert.False(t, dislikes.rows[pair{1, 100}])
	assert.Equal(t, models.Stats{}, tuits.tuits[100].Stats)
}

func TestPairLockStaysBounded(t *testing.T) {
	svc := newTestReactionService(newFakeReactions(), newFakeReactions(), newFakeTuits())

	assert.Same(t, svc.pairLock(1, 100), svc.pairLock(1, 100))

	seen := make(map[*sync.Mutex]struct{})
	for userID := int64(0); userID < 100; userID++ {
		for tuitID := int64(0); tuitID < 100; tuitID++ {
			seen[svc.pairLock(userID, tuitID)] = struct{}{}
		}
	}
	assert.LessOrEqual(t, len(seen), lockStripes)
}

func TestToggleCountsOtherUsers(t *testing.T) {
	likes := newFakeReactions(pair{2, 100}, pair{3, 100})
	dislikes := newFakeReactions()
	tuits := newFakeTuits(&models.Tuit{
		ID:    100,
		Stats: models.Stats{Likes: 2},
	})
	svc := newTestReactionService(likes, dislikes, tuits)

	require.NoError(t, svc.ToggleLike(context.Background(), 1, 100))

	assert.Equal(t, int64(3), tuits.tuits[100].Stats.Likes)
}
