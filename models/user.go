package models

import (
	"time"

	"gorm.io/datatypes"
)

type AccountType string

const (
	AccountPersonal     AccountType = "PERSONAL"
	AccountAcademic     AccountType = "ACADEMIC"
	AccountProfessional AccountType = "PROFESSIONAL"
)

type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "SINGLE"
	MaritalMarried MaritalStatus = "MARRIED"
	MaritalWidowed MaritalStatus = "WIDOWED"
)

// Location of a user, stored as a json column.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// User 对应表 users
// username is unique by application check, not by constraint.
type User struct {
	ID            int64                            `gorm:"column:id;primaryKey" json:"id"`
	Username      string                           `gorm:"column:username;type:varchar(64);not null;index:idx_username" json:"username"`
	Password      string                           `gorm:"column:password;type:varchar(128);not null" json:"password,omitempty"`
	FirstName     string                           `gorm:"column:first_name;type:varchar(64);default:''" json:"first_name"`
	LastName      string                           `gorm:"column:last_name;type:varchar(64);default:''" json:"last_name"`
	Email         string                           `gorm:"column:email;type:varchar(128);default:''" json:"email"`
	ProfilePhoto  string                           `gorm:"column:profile_photo;type:varchar(255);default:''" json:"profile_photo"`
	HeaderImage   string                           `gorm:"column:header_image;type:varchar(255);default:''" json:"header_image"`
	AccountType   AccountType                      `gorm:"column:account_type;type:varchar(16);default:'PERSONAL'" json:"account_type"`
	MaritalStatus MaritalStatus                    `gorm:"column:marital_status;type:varchar(16);default:'SINGLE'" json:"marital_status"`
	Biography     string                           `gorm:"column:biography;type:text" json:"biography"`
	DateOfBirth   *time.Time                       `gorm:"column:date_of_birth" json:"date_of_birth"`
	Joined        time.Time                        `gorm:"column:joined" json:"joined"`
	Location      datatypes.JSONType[Location]     `gorm:"column:location" json:"location"`
}

func (User) TableName() string { return "users" }
