package service

import (
	"context"

	"tuiter/dao"
	"tuiter/models"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID, tuitID int64) (*models.TuitLike, error)
	Unlike(ctx context.Context, userID, tuitID int64) (int64, error)
	UsersWhoLiked(ctx context.Context, tuitID int64) ([]*models.TuitLike, error)
	TuitsLikedBy(ctx context.Context, userID int64) ([]*models.TuitLike, error)
}

// LikeService covers the raw like row operations; the toggle lives in
// ReactionService.
type LikeService struct {
	LikeDAO *dao.TuitLikeDAO
}

func (s *LikeService) Like(ctx context.Context, userID, tuitID int64) (*models.TuitLike, error) {
	if err := s.LikeDAO.CreatePair(ctx, userID, tuitID); err != nil {
		return nil, err
	}
	return s.LikeDAO.GetByTuitUser(ctx, userID, tuitID)
}

func (s *LikeService) Unlike(ctx context.Context, userID, tuitID int64) (int64, error) {
	return s.LikeDAO.Repo.Delete(ctx, "tuit_id = ? AND user_id = ?", tuitID, userID)
}

func (s *LikeService) UsersWhoLiked(ctx context.Context, tuitID int64) ([]*models.TuitLike, error) {
	return s.LikeDAO.ListByTuit(ctx, tuitID)
}

func (s *LikeService) TuitsLikedBy(ctx context.Context, userID int64) ([]*models.TuitLike, error) {
	return s.LikeDAO.ListByUser(ctx, userID)
}
