package dao

import (
	"context"

	"tuiter/models"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{Repo: NewRepo[models.Message](db)}
}

// ListSentBy 用户发送的私信
func (d *MessageDAO) ListSentBy(ctx context.Context, userID int64) ([]*models.Message, error) {
	var items []*models.Message
	err := d.Db.WithContext(ctx).Preload("Receiver").
		Where("from_user = ?", userID).
		Order("sent_on DESC").
		Find(&items).Error
	return items, err
}

// ListReceivedBy 用户收到的私信
func (d *MessageDAO) ListReceivedBy(ctx context.Context, userID int64) ([]*models.Message, error) {
	var items []*models.Message
	err := d.Db.WithContext(ctx).Preload("Sender").
		Where("to_user = ?", userID).
		Order("sent_on DESC").
		Find(&items).Error
	return items, err
}

// ListBetween 两个用户之间的往来私信
func (d *MessageDAO) ListBetween(ctx context.Context, userID, otherID int64) ([]*models.Message, error) {
	var items []*models.Message
	err := d.Db.WithContext(ctx).
		Where("(from_user = ? AND to_user = ?) OR (from_user = ? AND to_user = ?)",
			userID, otherID, otherID, userID).
		Order("sent_on ASC").
		Find(&items).Error
	return items, err
}

func (d *MessageDAO) DeleteById(ctx context.Context, messageID int64) (int64, error) {
	return d.Repo.Delete(ctx, "id = ?", messageID)
}

func (d *MessageDAO) UpdateContent(ctx context.Context, messageID int64, content string) (int64, error) {
	res := d.Db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ?", messageID).
		Update("message", content)
	return res.RowsAffected, res.Error
}
