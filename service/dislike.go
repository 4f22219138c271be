package service

import (
	"context"

	"tuiter/dao"
	"tuiter/models"
)

var _ IDislikeService = (*DislikeService)(nil)

type IDislikeService interface {
	Dislike(ctx context.Context, userID, tuitID int64) (*models.TuitDislike, error)
	Undislike(ctx context.Context, userID, tuitID int64) (int64, error)
	UsersWhoDisliked(ctx context.Context, tuitID int64) ([]*models.TuitDislike, error)
	TuitsDislikedBy(ctx context.Context, userID int64) ([]*models.TuitDislike, error)
}

// DislikeService covers the raw dislike row operations; the toggle lives in
// ReactionService.
type DislikeService struct {
	DislikeDAO *dao.TuitDislikeDAO
}

func (s *DislikeService) Dislike(ctx context.Context, userID, tuitID int64) (*models.TuitDislike, error) {
	if err := s.DislikeDAO.CreatePair(ctx, userID, tuitID); err != nil {
		return nil, err
	}
	return s.DislikeDAO.GetByTuitUser(ctx, userID, tuitID)
}

func (s *DislikeService) Undislike(ctx context.Context, userID, tuitID int64) (int64, error) {
	return s.DislikeDAO.Repo.Delete(ctx, "tuit_id = ? AND user_id = ?", tuitID, userID)
}

func (s *DislikeService) UsersWhoDisliked(ctx context.Context, tuitID int64) ([]*models.TuitDislike, error) {
	return s.DislikeDAO.ListByTuit(ctx, tuitID)
}

func (s *DislikeService) TuitsDislikedBy(ctx context.Context, userID int64) ([]*models.TuitDislike, error) {
	return s.DislikeDAO.ListByUser(ctx, userID)
}
