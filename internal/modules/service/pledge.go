package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/infra/queue"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PledgeService interface {
	Create(ctx context.Context, in CreatePledgeInput) (*model.Pledge, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.Pledge, error)
}

type pledgeService struct {
	r   repo.PledgeRepo
	log *zap.Logger
	pub queue.EventPublisher
}

func NewPledgeService(r repo.PledgeRepo, log *zap.Logger, pub queue.EventPublisher) PledgeService {
	return &pledgeService{r: r, log: log, pub: pub}
}

type CreatePledgeInput struct {
	ProjectID  uuid.UUID
	UserID     uuid.UUID
	Amount     decimal.Decimal
	RewardTier *string
}

// PledgeCreatedEvent is what downstream consumers (notifications,
// analytics) get on the events queue after a pledge commits.
type PledgeCreatedEvent struct {
	Kind      string          `json:"kind"`
	PledgeID  uuid.UUID       `json:"pledge_id"`
	ProjectID uuid.UUID       `json:"project_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

func (s *pledgeService) Create(ctx context.Context, in CreatePledgeInput) (*model.Pledge, error) {
	if in.Amount.Sign() <= 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "pledge amount must be positive")
	}

	pledge := &model.Pledge{
		ProjectID:  in.ProjectID,
		UserID:     in.UserID,
		Amount:     in.Amount,
		RewardTier: in.RewardTier,
	}
	if err := s.r.Create(ctx, pledge); err != nil {
		return nil, err
	}

	if s.pub != nil {
		err := s.pub.PublishJSON(ctx, PledgeCreatedEvent{
			Kind:      "pledge.created",
			PledgeID:  pledge.ID,
			ProjectID: pledge.ProjectID,
			UserID:    pledge.UserID,
			Amount:    pledge.Amount,
			CreatedAt: pledge.CreatedAt,
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, "publish pledge event", err)
		}
	}

	return pledge, nil
}

func (s *pledgeService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.Pledge, error) {
	return s.r.ListForProject(ctx, projectID)
}
