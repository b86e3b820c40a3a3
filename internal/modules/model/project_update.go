package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectUpdate is an append-only log entry posted by a creator.
type ProjectUpdate struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Title     string    `gorm:"type:varchar(256);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ProjectUpdate) TableName() string { return "project_updates" }
