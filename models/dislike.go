package models

import "time"

// TuitDislike 对应表 tuit_dislikes
// Same shape and same pair-index caveat as TuitLike.
type TuitDislike struct {
	ID        int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	TuitID    int64     `gorm:"column:tuit_id;not null;index:idx_tuit_user,priority:1" json:"tuit_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_tuit_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Tuit *Tuit `gorm:"foreignKey:TuitID;references:ID" json:"tuit,omitempty"`
	User *User `gorm:"foreignKey:UserID;references:ID" json:"disliked_by,omitempty"`
}

func (TuitDislike) TableName() string { return "tuit_dislikes" }
