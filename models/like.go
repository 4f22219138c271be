package models

import "time"

// TuitLike 对应表 tuit_likes
// index on tuit_id + user_id; at most one row per pair is enforced by the
// reaction service, not by a unique constraint.
type TuitLike struct {
	ID        int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	TuitID    int64     `gorm:"column:tuit_id;not null;index:idx_tuit_user,priority:1" json:"tuit_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_tuit_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Tuit *Tuit `gorm:"foreignKey:TuitID;references:ID" json:"tuit,omitempty"`
	User *User `gorm:"foreignKey:UserID;references:ID" json:"liked_by,omitempty"`
}

func (TuitLike) TableName() string { return "tuit_likes" }
