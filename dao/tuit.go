package dao

import (
	"context"
	"errors"

	"tuiter/models"

	"gorm.io/gorm"
)

type TuitDAO struct {
	Repo[models.Tuit]
}

func NewTuitDAO(db *gorm.DB) *TuitDAO {
	return &TuitDAO{Repo: NewRepo[models.Tuit](db)}
}

// FindAll 查询全部，作者一并带出
func (d *TuitDAO) FindAll(ctx context.Context) ([]*models.Tuit, error) {
	var tuits []*models.Tuit
	err := d.Db.WithContext(ctx).Preload("Author").Order("posted_on DESC").Find(&tuits).Error
	return tuits, err
}

func (d *TuitDAO) FindByUser(ctx context.Context, userID int64) ([]*models.Tuit, error) {
	var tuits []*models.Tuit
	err := d.Db.WithContext(ctx).Preload("Author").
		Where("posted_by = ?", userID).
		Order("posted_on DESC").
		Find(&tuits).Error
	return tuits, err
}

// FindByID 按主键查询，不存在返回 nil
func (d *TuitDAO) FindByID(ctx context.Context, tuitID int64) (*models.Tuit, error) {
	var tuit models.Tuit
	err := d.Db.WithContext(ctx).Preload("Author").Where("id = ?", tuitID).First(&tuit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tuit, nil
}

// UpdateStats overwrites the four counters in one write. Full replace, not
// an increment: the caller supplies the values it computed.
func (d *TuitDAO) UpdateStats(ctx context.Context, tuitID int64, stats models.Stats) error {
	return d.Db.WithContext(ctx).Model(&models.Tuit{}).
		Where("id = ?", tuitID).
		Updates(map[string]any{
			"stats_replies":  stats.Replies,
			"stats_retuits":  stats.Retuits,
			"stats_likes":    stats.Likes,
			"stats_dislikes": stats.Dislikes,
		}).Error
}

func (d *TuitDAO) UpdateContent(ctx context.Context, tuitID int64, content string) (int64, error) {
	res := d.Db.WithContext(ctx).Model(&models.Tuit{}).
		Where("id = ?", tuitID).
		Update("tuit", content)
	return res.RowsAffected, res.Error
}

func (d *TuitDAO) DeleteById(ctx context.Context, tuitID int64) (int64, error) {
	return d.Repo.Delete(ctx, "id = ?", tuitID)
}

func (d *TuitDAO) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.Delete(ctx, "posted_by = ?", userID)
}
