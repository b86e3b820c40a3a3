package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(256);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	Role         string    `gorm:"type:varchar(50);not null;default:'creator'" json:"role"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL    string    `gorm:"type:varchar(512)" json:"avatar_url,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// User <-> Project
	Projects []Project `gorm:"foreignKey:CreatorID;references:ID" json:"-"`

	// User <-> Pledge
	Pledges []Pledge `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (User) TableName() string { return "users" }
