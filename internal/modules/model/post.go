package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ImageURL string    `gorm:"type:varchar(512);default:'https://placehold.co/100'" json:"image_url"`
	Title    string    `gorm:"type:varchar(256);not null" json:"title"`
	Body     string    `gorm:"type:text;not null" json:"body"`
	Tags     *string   `gorm:"type:varchar(512)" json:"tags,omitempty"`
	Author   string    `gorm:"type:varchar(128);not null" json:"author"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Post) TableName() string { return "posts" }
