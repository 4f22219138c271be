package dao

import (
	"context"
	"errors"
	"time"

	"tuiter/models"

	"gorm.io/gorm"
)

type TuitLikeDAO struct {
	Repo[models.TuitLike]
}

func NewTuitLikeDAO(db *gorm.DB) *TuitLikeDAO {
	return &TuitLikeDAO{Repo: NewRepo[models.TuitLike](db)}
}

// GetByTuitUser 查询指定用户对指定推文的点赞记录
func (d *TuitLikeDAO) GetByTuitUser(ctx context.Context, userID, tuitID int64) (*models.TuitLike, error) {
	var item models.TuitLike
	err := d.Db.WithContext(ctx).Where("tuit_id = ? AND user_id = ?", tuitID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (d *TuitLikeDAO) Exists(ctx context.Context, userID, tuitID int64) (bool, error) {
	return d.IsExist(ctx, "tuit_id = ? AND user_id = ?", tuitID, userID)
}

func (d *TuitLikeDAO) CountByTuit(ctx context.Context, tuitID int64) (int64, error) {
	return d.Repo.Count(ctx, "tuit_id = ?", tuitID)
}

// CreatePair inserts a like row. No duplicate check here; the reaction
// service verifies absence first.
func (d *TuitLikeDAO) CreatePair(ctx context.Context, userID, tuitID int64) error {
	return d.Repo.Create(ctx, &models.TuitLike{
		TuitID:    tuitID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
}

// DeletePair removes the row if present; a miss is not an error.
func (d *TuitLikeDAO) DeletePair(ctx context.Context, userID, tuitID int64) error {
	_, err := d.Repo.Delete(ctx, "tuit_id = ? AND user_id = ?", tuitID, userID)
	return err
}

// ListByTuit 点赞该推文的用户列表
func (d *TuitLikeDAO) ListByTuit(ctx context.Context, tuitID int64) ([]*models.TuitLike, error) {
	var items []*models.TuitLike
	err := d.Db.WithContext(ctx).Preload("User").Where("tuit_id = ?", tuitID).Find(&items).Error
	return items, err
}

// ListByUser 用户点赞过的推文列表
func (d *TuitLikeDAO) ListByUser(ctx context.Context, userID int64) ([]*models.TuitLike, error) {
	var items []*models.TuitLike
	err := d.Db.WithContext(ctx).Preload("Tuit").Preload("Tuit.Author").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}
