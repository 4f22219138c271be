package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"tuiter/dao"
	"tuiter/models"
)

var ErrTuitNotFound = errors.New("tuit not found")

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	ToggleLike(ctx context.Context, userID, tuitID int64) error
	ToggleDislike(ctx context.Context, userID, tuitID int64) error
}

// reactionStore is the per-kind reaction collection: point lookups and
// mutations keyed by the (user, tuit) pair. TuitLikeDAO and TuitDislikeDAO
// both satisfy it.
type reactionStore interface {
	Exists(ctx context.Context, userID, tuitID int64) (bool, error)
	CountByTuit(ctx context.Context, tuitID int64) (int64, error)
	CreatePair(ctx context.Context, userID, tuitID int64) error
	DeletePair(ctx context.Context, userID, tuitID int64) error
}

type tuitStore interface {
	FindByID(ctx context.Context, tuitID int64) (*models.Tuit, error)
	UpdateStats(ctx context.Context, tuitID int64, stats models.Stats) error
}

// lockStripes bounds the toggle lock set; memory stays fixed no matter how
// many (user, tuit) pairs the process sees.
const lockStripes = 64

// ReactionService flips a user's reaction to a tuit and keeps the tuit's
// denormalized counters in step, including retracting the opposite reaction
// when a new one is established.
//
// The reads and the two writes are separate store calls. A striped mutex set
// serializes toggles for the same (user, tuit) pair inside this process, at
// the cost of also serializing pairs that hash to the same stripe; toggles
// racing from another process can still interleave, since the store carries
// no unique constraint on the pair.
type ReactionService struct {
	likes    reactionStore
	dislikes reactionStore
	tuits    tuitStore

	locks [lockStripes]sync.Mutex
}

func NewReactionService(likeDAO *dao.TuitLikeDAO, dislikeDAO *dao.TuitDislikeDAO, tuitDAO *dao.TuitDAO) *ReactionService {
	return &ReactionService{
		likes:    likeDAO,
		dislikes: dislikeDAO,
		tuits:    tuitDAO,
	}
}

func (s *ReactionService) pairLock(userID, tuitID int64) *sync.Mutex {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d", userID, tuitID)
	return &s.locks[h.Sum64()%lockStripes]
}

// ToggleLike creates the like if absent and removes it if present. When a
// like is established on a tuit the user had disliked, the dislike is
// retracted as well. Removing a like never touches the dislike side.
func (s *ReactionService) ToggleLike(ctx context.Context, userID, tuitID int64) error {
	mu := s.pairLock(userID, tuitID)
	mu.Lock()
	defer mu.Unlock()

	return toggle(ctx, s.likes, s.dislikes, s.tuits, userID, tuitID, likeCounters)
}

// ToggleDislike is the mirror of ToggleLike with the roles swapped.
func (s *ReactionService) ToggleDislike(ctx context.Context, userID, tuitID int64) error {
	mu := s.pairLock(userID, tuitID)
	mu.Lock()
	defer mu.Unlock()

	return toggle(ctx, s.dislikes, s.likes, s.tuits, userID, tuitID, dislikeCounters)
}

// counters selects which Stats fields the primary and the opposite reaction
// of a toggle write to.
type counters struct {
	primary  func(*models.Stats) *int64
	opposite func(*models.Stats) *int64
}

var (
	likeCounters = counters{
		primary:  func(s *models.Stats) *int64 { return &s.Likes },
		opposite: func(s *models.Stats) *int64 { return &s.Dislikes },
	}
	dislikeCounters = counters{
		primary:  func(s *models.Stats) *int64 { return &s.Dislikes },
		opposite: func(s *models.Stats) *int64 { return &s.Likes },
	}
)

// toggle runs the shared reaction flip:
//
//	1. look up whether the user already reacted
//	2. read the current reaction count (separate read, not atomic with 1)
//	3. load the tuit for its current stats
//	4. reacted already:  delete the row, counter = count - 1
//	5. not yet:          create the row, counter = count + 1, then retract
//	   an existing opposite reaction and decrement its counter
//	6. write all four counters back in one overwrite
//
// replies and retuits pass through from step 3 untouched.
func toggle(ctx context.Context, primary, opposite reactionStore, tuits tuitStore, userID, tuitID int64, c counters) error {
	reacted, err := primary.Exists(ctx, userID, tuitID)
	if err != nil {
		return err
	}
	count, err := primary.CountByTuit(ctx, tuitID)
	if err != nil {
		return err
	}
	tuit, err := tuits.FindByID(ctx, tuitID)
	if err != nil {
		return err
	}
	if tuit == nil {
		return ErrTuitNotFound
	}

	stats := tuit.Stats
	if reacted {
		if err := primary.DeletePair(ctx, userID, tuitID); err != nil {
			return err
		}
		*c.primary(&stats) = count - 1
	} else {
		if err := primary.CreatePair(ctx, userID, tuitID); err != nil {
			return err
		}
		*c.primary(&stats) = count + 1

		reversed, err := opposite.Exists(ctx, userID, tuitID)
		if err != nil {
			return err
		}
		if reversed {
			oppCount, err := opposite.CountByTuit(ctx, tuitID)
			if err != nil {
				return err
			}
			if err := opposite.DeletePair(ctx, userID, tuitID); err != nil {
				return err
			}
			*c.opposite(&stats) = oppCount - 1
		}
	}

	return tuits.UpdateStats(ctx, tuitID, stats)
}
