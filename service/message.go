package service

import (
	"context"
	"time"

	"tuiter/dao"
	"tuiter/models"
	"tuiter/pkg/snowflake"
)

var _ IMessageService = (*MessageService)(nil)

type IMessageService interface {
	Send(ctx context.Context, fromID, toID int64, content string) (*models.Message, error)
	Sent(ctx context.Context, userID int64) ([]*models.Message, error)
	Received(ctx context.Context, userID int64) ([]*models.Message, error)
	Between(ctx context.Context, userID, otherID int64) ([]*models.Message, error)
	Delete(ctx context.Context, messageID int64) (int64, error)
	Update(ctx context.Context, messageID int64, content string) (int64, error)
}

type MessageService struct {
	MessageDAO *dao.MessageDAO
}

func (s *MessageService) Send(ctx context.Context, fromID, toID int64, content string) (*models.Message, error) {
	msg := &models.Message{
		ID:       snowflake.GenID(),
		Message:  content,
		FromUser: fromID,
		ToUser:   toID,
		SentOn:   time.Now(),
	}
	if err := s.MessageDAO.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) Sent(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.MessageDAO.ListSentBy(ctx, userID)
}

func (s *MessageService) Received(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.MessageDAO.ListReceivedBy(ctx, userID)
}

func (s *MessageService) Between(ctx context.Context, userID, otherID int64) ([]*models.Message, error) {
	return s.MessageDAO.ListBetween(ctx, userID, otherID)
}

func (s *MessageService) Delete(ctx context.Context, messageID int64) (int64, error) {
	return s.MessageDAO.DeleteById(ctx, messageID)
}

func (s *MessageService) Update(ctx context.Context, messageID int64, content string) (int64, error) {
	return s.MessageDAO.UpdateContent(ctx, messageID, content)
}
