package models

import "time"

// Follow 对应表 follows
type Follow struct {
	ID            int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserFollowed  int64     `gorm:"column:user_followed;not null;index:idx_followed_following,priority:1" json:"user_followed"`
	UserFollowing int64     `gorm:"column:user_following;not null;index:idx_followed_following,priority:2" json:"user_following"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	Followed  *User `gorm:"foreignKey:UserFollowed;references:ID" json:"followed,omitempty"`
	Following *User `gorm:"foreignKey:UserFollowing;references:ID" json:"following,omitempty"`
}

func (Follow) TableName() string { return "follows" }
