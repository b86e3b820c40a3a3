package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/infra/queue"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"go.uber.org/zap"
)

type UpdateService interface {
	Create(ctx context.Context, projectID uuid.UUID, title, content string) (*model.ProjectUpdate, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectUpdate, error)
}

type updateService struct {
	r   repo.ProjectUpdateRepo
	log *zap.Logger
	pub queue.EventPublisher
}

func NewUpdateService(r repo.ProjectUpdateRepo, log *zap.Logger, pub queue.EventPublisher) UpdateService {
	return &updateService{r: r, log: log, pub: pub}
}

type UpdatePostedEvent struct {
	Kind      string    `json:"kind"`
	UpdateID  uuid.UUID `json:"update_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *updateService) Create(ctx context.Context, projectID uuid.UUID, title, content string) (*model.ProjectUpdate, error) {
	if title == "" || content == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "title and content are required")
	}

	upd := &model.ProjectUpdate{
		ProjectID: projectID,
		Title:     title,
		Content:   content,
	}
	if err := s.r.Create(ctx, upd); err != nil {
		return nil, err
	}

	if s.pub != nil {
		err := s.pub.PublishJSON(ctx, UpdatePostedEvent{
			Kind:      "project.update.created",
			UpdateID:  upd.ID,
			ProjectID: upd.ProjectID,
			Title:     upd.Title,
			CreatedAt: upd.CreatedAt,
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, "publish update event", err)
		}
	}

	return upd, nil
}

func (s *updateService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectUpdate, error) {
	return s.r.ListForProject(ctx, projectID)
}
