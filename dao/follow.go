package dao

import (
	"context"
	"time"

	"tuiter/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](db)}
}

func (d *FollowDAO) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	return d.IsExist(ctx, "user_followed = ? AND user_following = ?", followedID, followerID)
}

func (d *FollowDAO) CreatePair(ctx context.Context, followerID, followedID int64) (*models.Follow, error) {
	follow := &models.Follow{
		UserFollowed:  followedID,
		UserFollowing: followerID,
		CreatedAt:     time.Now(),
	}
	if err := d.Repo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}

func (d *FollowDAO) DeletePair(ctx context.Context, followerID, followedID int64) (int64, error) {
	return d.Repo.Delete(ctx, "user_followed = ? AND user_following = ?", followedID, followerID)
}

// ListFollowing 用户关注的人
func (d *FollowDAO) ListFollowing(ctx context.Context, userID int64) ([]*models.Follow, error) {
	var items []*models.Follow
	err := d.Db.WithContext(ctx).Preload("Followed").Where("user_following = ?", userID).Find(&items).Error
	return items, err
}

// ListFollowers 关注该用户的人
func (d *FollowDAO) ListFollowers(ctx context.Context, userID int64) ([]*models.Follow, error) {
	var items []*models.Follow
	err := d.Db.WithContext(ctx).Preload("Following").Where("user_followed = ?", userID).Find(&items).Error
	return items, err
}

func (d *FollowDAO) GetPair(ctx context.Context, followerID, followedID int64) (*models.Follow, error) {
	var item models.Follow
	err := d.Db.WithContext(ctx).Preload("Followed").
		Where("user_followed = ? AND user_following = ?", followedID, followerID).
		Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}
