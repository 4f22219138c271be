package service

import (
	"context"

	"tuiter/dao"
	"tuiter/models"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	Bookmark(ctx context.Context, userID, tuitID int64) (*models.Bookmark, error)
	Unbookmark(ctx context.Context, userID, tuitID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	ListByTuit(ctx context.Context, tuitID int64) ([]*models.Bookmark, error)
	Get(ctx context.Context, userID, tuitID int64) (*models.Bookmark, error)
}

type BookmarkService struct {
	BookmarkDAO *dao.BookmarkDAO
}

func (s *BookmarkService) Bookmark(ctx context.Context, userID, tuitID int64) (*models.Bookmark, error) {
	return s.BookmarkDAO.CreatePair(ctx, userID, tuitID)
}

func (s *BookmarkService) Unbookmark(ctx context.Context, userID, tuitID int64) (int64, error) {
	return s.BookmarkDAO.DeletePair(ctx, userID, tuitID)
}

func (s *BookmarkService) ListByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	return s.BookmarkDAO.ListByUser(ctx, userID)
}

func (s *BookmarkService) ListByTuit(ctx context.Context, tuitID int64) ([]*models.Bookmark, error) {
	return s.BookmarkDAO.ListByTuit(ctx, tuitID)
}

func (s *BookmarkService) Get(ctx context.Context, userID, tuitID int64) (*models.Bookmark, error) {
	return s.BookmarkDAO.GetPair(ctx, userID, tuitID)
}
