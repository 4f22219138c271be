package models

import "time"

// Message 对应表 messages
type Message struct {
	ID       int64     `gorm:"column:id;primaryKey" json:"id"`
	Message  string    `gorm:"column:message;type:text;not null" json:"message"`
	FromUser int64     `gorm:"column:from_user;not null;index:idx_from" json:"from"`
	ToUser   int64     `gorm:"column:to_user;not null;index:idx_to" json:"to"`
	SentOn   time.Time `gorm:"column:sent_on" json:"sent_on"`

	Sender   *User `gorm:"foreignKey:FromUser;references:ID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ToUser;references:ID" json:"receiver,omitempty"`
}

func (Message) TableName() string { return "messages" }
