package service

import (
	"context"
	"time"

	"tuiter/dao"
	"tuiter/models"
	"tuiter/pkg/snowflake"
)

var _ ITuitService = (*TuitService)(nil)

type ITuitService interface {
	List(ctx context.Context) ([]*models.Tuit, error)
	Get(ctx context.Context, tuitID int64) (*models.Tuit, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Tuit, error)
	Create(ctx context.Context, userID int64, content string) (*models.Tuit, error)
	Update(ctx context.Context, tuitID int64, content string) (int64, error)
	Delete(ctx context.Context, tuitID int64) (int64, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

type TuitService struct {
	TuitDAO *dao.TuitDAO
}

func (s *TuitService) List(ctx context.Context) ([]*models.Tuit, error) {
	return s.TuitDAO.FindAll(ctx)
}

func (s *TuitService) Get(ctx context.Context, tuitID int64) (*models.Tuit, error) {
	return s.TuitDAO.FindByID(ctx, tuitID)
}

func (s *TuitService) ListByUser(ctx context.Context, userID int64) ([]*models.Tuit, error) {
	return s.TuitDAO.FindByUser(ctx, userID)
}

func (s *TuitService) Create(ctx context.Context, userID int64, content string) (*models.Tuit, error) {
	tuit := &models.Tuit{
		ID:       snowflake.GenID(),
		Tuit:     content,
		PostedBy: userID,
		PostedOn: time.Now(),
	}
	if err := s.TuitDAO.Create(ctx, tuit); err != nil {
		return nil, err
	}
	return tuit, nil
}

func (s *TuitService) Update(ctx context.Context, tuitID int64, content string) (int64, error) {
	return s.TuitDAO.UpdateContent(ctx, tuitID, content)
}

func (s *TuitService) Delete(ctx context.Context, tuitID int64) (int64, error) {
	return s.TuitDAO.DeleteById(ctx, tuitID)
}

func (s *TuitService) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return s.TuitDAO.DeleteByUser(ctx, userID)
}
