package service

import (
	"context"
	"time"

	"tuiter/dao"
	"tuiter/models"
	"tuiter/pkg/snowflake"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, userID int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, userID int64, data map[string]any) (int64, error)
	Delete(ctx context.Context, userID int64) (int64, error)
	DeleteByUsername(ctx context.Context, username string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type UserService struct {
	UsersRepo *dao.Users
	TuitDAO   *dao.TuitDAO
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.UsersRepo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == 0 {
		user.ID = snowflake.GenID()
	}
	if user.Joined.IsZero() {
		user.Joined = time.Now()
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, userID int64, data map[string]any) (int64, error) {
	return s.UsersRepo.UpdateProfile(ctx, userID, data)
}

// Delete removes the user and cascades the user's tuits. Reactions, follows
// and bookmarks left behind by the user are NOT cascaded.
func (s *UserService) Delete(ctx context.Context, userID int64) (int64, error) {
	if _, err := s.TuitDAO.DeleteByUser(ctx, userID); err != nil {
		return 0, err
	}
	return s.UsersRepo.DeleteById(ctx, userID)
}

func (s *UserService) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	return s.UsersRepo.DeleteByUsername(ctx, username)
}

func (s *UserService) DeleteAll(ctx context.Context) (int64, error) {
	return s.UsersRepo.DeleteAll(ctx)
}
