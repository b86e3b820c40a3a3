package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type ProjectService interface {
	List(ctx context.Context, skip, limit int) ([]model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id uuid.UUID, patch ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct{ r repo.ProjectRepo }

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

func (s *projectService) List(ctx context.Context, skip, limit int) ([]model.Project, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.r.List(ctx, skip, limit)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.r.Get(ctx, id)
}

func (s *projectService) Create(ctx context.Context, p *model.Project) error {
	if p.Name == "" {
		return apperr.New(apperr.KindInvalidInput, "project name is required")
	}
	if p.Status == "" {
		p.Status = model.StatusDraft
	}
	if !model.ValidStatus(p.Status) {
		return apperr.New(apperr.KindInvalidInput, "unknown project status")
	}
	return s.r.Create(ctx, p)
}

// ProjectPatch carries the fields a PUT may change; nil means untouched.
// CurrentAmount and BackersCount are absent on purpose: only the pledge
// ledger moves the aggregates.
type ProjectPatch struct {
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	GoalAmount        *decimal.Decimal `json:"goal_amount,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Location          *string          `json:"location,omitempty"`
	OrbitAltitudeKM   *float64         `json:"orbit_altitude_km,omitempty"`
	Status            *string          `json:"status,omitempty"`
	ImageURL          *string          `json:"image_url,omitempty"`
	VideoURL          *string          `json:"video_url,omitempty"`
	TechSummary       *string          `json:"tech_summary,omitempty"`
	EstimatedTimeline *string          `json:"estimated_timeline,omitempty"`
	Risks             *string          `json:"risks,omitempty"`
	Tags              datatypes.JSON   `json:"tags,omitempty"`
	LaunchDate        *time.Time       `json:"launch_date,omitempty"`
}

// Updates flattens the patch into a column map for the repo.
func (p ProjectPatch) Updates() map[string]any {
	u := map[string]any{}
	if p.Name != nil {
		u["name"] = *p.Name
	}
	if p.Description != nil {
		u["description"] = *p.Description
	}
	if p.GoalAmount != nil {
		u["goal_amount"] = *p.GoalAmount
	}
	if p.Category != nil {
		u["category"] = *p.Category
	}
	if p.Location != nil {
		u["location"] = *p.Location
	}
	if p.OrbitAltitudeKM != nil {
		u["orbit_altitude_km"] = *p.OrbitAltitudeKM
	}
	if p.Status != nil {
		u["status"] = *p.Status
	}
	if p.ImageURL != nil {
		u["image_url"] = *p.ImageURL
	}
	if p.VideoURL != nil {
		u["video_url"] = *p.VideoURL
	}
	if p.TechSummary != nil {
		u["tech_summary"] = *p.TechSummary
	}
	if p.EstimatedTimeline != nil {
		u["estimated_timeline"] = *p.EstimatedTimeline
	}
	if p.Risks != nil {
		u["risks"] = *p.Risks
	}
	if p.Tags != nil {
		u["tags"] = p.Tags
	}
	if p.LaunchDate != nil {
		u["launch_date"] = *p.LaunchDate
	}
	return u
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, patch ProjectPatch) (*model.Project, error) {
	if patch.Status != nil && !model.ValidStatus(*patch.Status) {
		return nil, apperr.New(apperr.KindInvalidInput, "unknown project status")
	}
	return s.r.Update(ctx, id, patch.Updates())
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}
