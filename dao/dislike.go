package dao

import (
	"context"
	"errors"
	"time"

	"tuiter/models"

	"gorm.io/gorm"
)

type TuitDislikeDAO struct {
	Repo[models.TuitDislike]
}

func NewTuitDislikeDAO(db *gorm.DB) *TuitDislikeDAO {
	return &TuitDislikeDAO{Repo: NewRepo[models.TuitDislike](db)}
}

// GetByTuitUser 查询指定用户对指定推文的点踩记录
func (d *TuitDislikeDAO) GetByTuitUser(ctx context.Context, userID, tuitID int64) (*models.TuitDislike, error) {
	var item models.TuitDislike
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

func (d *TuitDislikeDAO) Exists(ctx context.Context, userID, tuitID int64) (bool, error) {
	return d.IsExist(ctx, "tuit_id = ? AND user_id = ?", tuitID, userID)
}

func (d *TuitDislikeDAO) CountByTuit(ctx context.Context, tuitID int64) (int64, error) {
	return d.Repo.Count(ctx, "tuit_id = ?", tuitID)
}

func (d *TuitDislikeDAO) CreatePair(ctx context.Context, userID, tuitID int64) error {
	return d.Repo.Create(ctx, &models.TuitDislike{
		TuitID:    tuitID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
}

func (d *TuitDislikeDAO) DeletePair(ctx context.Context, userID, tuitID int64) error {
	_, err := d.Repo.Delete(ctx, "tuit_id = ? AND user_id = ?", tuitID, userID)
	return err
}

// ListByTuit 点踩该推文的用户列表
func (d *TuitDislikeDAO) ListByTuit(ctx context.Context, tuitID int64) ([]*models.TuitDislike, error) {
	var items []*models.TuitDislike
	err := d.Db.WithContext(ctx).Preload("User").Where("tuit_id = ?", tuitID).Find(&items).Error
	return items, err
}

// ListByUser 用户点踩过的推文列表
func (d *TuitDislikeDAO) ListByUser(ctx context.Context, userID int64) ([]*models.TuitDislike, error) {
	var items []*models.TuitDislike
	err := d.Db.WithContext(ctx).Preload("Tuit").Preload("Tuit.Author").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}
