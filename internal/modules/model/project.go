package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusFunded   = "funded"
	StatusCanceled = "canceled"
	StatusInOrbit  = "in_orbit"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusFunded, StatusCanceled, StatusInOrbit:
		return true
	}
	return false
}

type Project struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(256);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	GoalAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"goal_amount"`

	// CurrentAmount and BackersCount are derived sums over the project's
	// pledges. Only the pledge ledger writes them.
	CurrentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"current_amount"`
	BackersCount  int             `gorm:"not null;default:0" json:"backers_count"`

	Category          string         `gorm:"type:varchar(128)" json:"category,omitempty"`
	Location          string         `gorm:"type:varchar(64);not null;default:'LEO'" json:"location"`
	OrbitAltitudeKM   *float64       `json:"orbit_altitude_km,omitempty"`
	Status            string         `gorm:"type:varchar(64);not null;default:'draft'" json:"status"`
	ImageURL          string         `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	VideoURL          string         `gorm:"type:varchar(512)" json:"video_url,omitempty"`
	TechSummary       string         `gorm:"type:text" json:"tech_summary,omitempty"`
	EstimatedTimeline string         `gorm:"type:text" json:"estimated_timeline,omitempty"`
	Risks             string         `gorm:"type:text" json:"risks,omitempty"`
	Tags              datatypes.JSON `gorm:"type:jsonb" swaggertype:"array,string" json:"tags,omitempty"`
	LaunchDate        *time.Time     `json:"launch_date,omitempty"`

	CreatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"creator_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project exclusively owns its pledges and updates.
	Pledges []Pledge        `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Updates []ProjectUpdate `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }

// ApplyPledge folds one pledge into the aggregate totals. Callers must
// hold the project row lock for the duration of the surrounding
// transaction, or concurrent pledges lose updates.
func (p *Project) ApplyPledge(amount decimal.Decimal) {
	p.CurrentAmount = p.CurrentAmount.Add(amount)
	p.BackersCount++
}
