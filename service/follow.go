package service

import (
	"context"

	"tuiter/dao"
	"tuiter/models"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followedID int64) (*models.Follow, error)
	Unfollow(ctx context.Context, followerID, followedID int64) (int64, error)
	Following(ctx context.Context, userID int64) ([]*models.Follow, error)
	Followers(ctx context.Context, userID int64) ([]*models.Follow, error)
	Get(ctx context.Context, followerID, followedID int64) (*models.Follow, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
}

func (s *FollowService) Follow(ctx context.Context, followerID, followedID int64) (*models.Follow, error) {
	return s.FollowDAO.CreatePair(ctx, followerID, followedID)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID int64) (int64, error) {
	return s.FollowDAO.DeletePair(ctx, followerID, followedID)
}

func (s *FollowService) Following(ctx context.Context, userID int64) ([]*models.Follow, error) {
	return s.FollowDAO.ListFollowing(ctx, userID)
}

func (s *FollowService) Followers(ctx context.Context, userID int64) ([]*models.Follow, error) {
	return s.FollowDAO.ListFollowers(ctx, userID)
}

func (s *FollowService) Get(ctx context.Context, followerID, followedID int64) (*models.Follow, error) {
	return s.FollowDAO.GetPair(ctx, followerID, followedID)
}
