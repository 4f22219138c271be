package dao

import (
	"context"
	"errors"

	"tuiter/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 按用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := u.Repo.FindByWhere(ctx, "username = ?", username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *Users) FindAll(ctx context.Context) ([]*models.User, error) {
	return u.Repo.FindAllWhere(ctx, "")
}

func (u *Users) DeleteById(ctx context.Context, id int64) (int64, error) {
	return u.Repo.Delete(ctx, "id = ?", id)
}

func (u *Users) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	return u.Repo.Delete(ctx, "username = ?", username)
}

func (u *Users) DeleteAll(ctx context.Context) (int64, error) {
	return u.Repo.Delete(ctx, "1 = 1")
}

func (u *Users) UpdateProfile(ctx context.Context, id int64, data map[string]any) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	return u.Repo.UpdateById(ctx, id, data)
}
