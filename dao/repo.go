package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo is the generic base embedded by every DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAllWhere(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	db := r.Db.WithContext(ctx)
	if where != "" {
		db = db.Where(where, args...)
	}
	err := db.Find(&items).Error
	return items, err
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	var item T
	err := r.Db.WithContext(ctx).Model(&item).Where(where, args...).Count(&count).Error
	return count, err
}

// Delete removes matching rows; deleting nothing is not an error.
func (r Repo[T]) Delete(ctx context.Context, where string, args ...any) (int64, error) {
	var item T
	res := r.Db.WithContext(ctx).Where(where, args...).Delete(&item)
	return res.RowsAffected, res.Error
}

func (r Repo[T]) UpdateById(ctx context.Context, id any, data map[string]any) (int64, error) {
	var item T
	res := r.Db.WithContext(ctx).Model(&item).Where("id = ?", id).Updates(data)
	return res.RowsAffected, res.Error
}
