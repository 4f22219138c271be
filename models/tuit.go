package models

import "time"

// Stats is the denormalized counter record embedded on each tuit row.
// likes/dislikes are maintained by the reaction toggle, not by constraints.
type Stats struct {
	Replies  int64 `gorm:"column:replies;not null;default:0" json:"replies"`
	Retuits  int64 `gorm:"column:retuits;not null;default:0" json:"retuits"`
	Likes    int64 `gorm:"column:likes;not null;default:0" json:"likes"`
	Dislikes int64 `gorm:"column:dislikes;not null;default:0" json:"dislikes"`
}

// Tuit 对应表 tuits
type Tuit struct {
	ID       int64     `gorm:"column:id;primaryKey" json:"id"`
	Tuit     string    `gorm:"column:tuit;type:text;not null" json:"tuit"`
	PostedBy int64     `gorm:"column:posted_by;not null;index:idx_posted_by" json:"posted_by"`
	PostedOn time.Time `gorm:"column:posted_on;index:idx_posted_on" json:"posted_on"`
	Stats    Stats     `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`

	Author *User `gorm:"foreignKey:PostedBy;references:ID" json:"author,omitempty"`
}

func (Tuit) TableName() string { return "tuits" }
