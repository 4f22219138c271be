package service

import (
	"context"
	"errors"
	"time"

	"tuiter/dao"
	"tuiter/dao/cache"
	"tuiter/models"
	"tuiter/pkg/encrypt"
	"tuiter/pkg/snowflake"
)

var (
	ErrUserExists     = errors.New("username already taken")
	ErrBadCredentials = errors.New("wrong username or password")
	ErrNoSession      = errors.New("no active session")
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Signup(ctx context.Context, user *models.User) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Profile(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

// AuthService implements session-cookie authentication: bcrypt-hashed
// credentials in the users collection, session tokens in redis.
type AuthService struct {
	UsersRepo *dao.Users
	Sessions  *cache.SessionStorage
}

// Signup creates the user and opens a session. The stored password is a
// bcrypt hash; the returned user carries a blanked password.
func (s *AuthService) Signup(ctx context.Context, user *models.User) (*models.User, string, error) {
	if s.UsersRepo.IsUsernameExist(ctx, user.Username) {
		return nil, "", ErrUserExists
	}

	user.ID = snowflake.GenID()
	user.Password = encrypt.HashPassword(user.Password)
	user.Joined = time.Now()
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.Sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	user.Password = ""
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrBadCredentials
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, "", ErrBadCredentials
	}

	token, err := s.Sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	user.Password = ""
	return user, token, nil
}

func (s *AuthService) Profile(ctx context.Context, token string) (*models.User, error) {
	uid, err := s.Sessions.UserID(ctx, token)
	if err != nil {
		return nil, err
	}
	if uid == 0 {
		return nil, ErrNoSession
	}
	user, err := s.UsersRepo.FindById(ctx, uid)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Destroy(ctx, token)
}
