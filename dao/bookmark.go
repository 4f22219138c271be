package dao

import (
	"context"
	"time"

	"tuiter/models"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	Repo[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{Repo: NewRepo[models.Bookmark](db)}
}

func (d *BookmarkDAO) CreatePair(ctx context.Context, userID, tuitID int64) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{
		TuitID:    tuitID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := d.Repo.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (d *BookmarkDAO) DeletePair(ctx context.Context, userID, tuitID int64) (int64, error) {
	return d.Repo.Delete(ctx, "tuit_id = ? AND user_id = ?", tuitID, userID)
}

// ListByUser 用户收藏的推文
func (d *BookmarkDAO) ListByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	var items []*models.Bookmark
	err := d.Db.WithContext(ctx).Preload("Tuit").Preload("Tuit.Author").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// ListByTuit 收藏该推文的用户
func (d *BookmarkDAO) ListByTuit(ctx context.Context, tuitID int64) ([]*models.Bookmark, error) {
	var items []*models.Bookmark
	err := d.Db.WithContext(ctx).Preload("User").Where("tuit_id = ?", tuitID).Find(&items).Error
	return items, err
}

func (d *BookmarkDAO) GetPair(ctx context.Context, userID, tuitID int64) (*models.Bookmark, error) {
	var item models.Bookmark
	err := d.Db.WithContext(ctx).Preload("Tuit").
		Where("tuit_id = ? AND user_id = ?", tuitID, userID).
		Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}
