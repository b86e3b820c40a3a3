package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PledgeRepo interface {
	Create(ctx context.Context, p *model.Pledge) error
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.Pledge, error)
}

type pledgeRepo struct{ db *gorm.DB }

func NewPledgeRepo(db *gorm.DB) PledgeRepo {
	return &pledgeRepo{db: db}
}

// Create inserts the pledge and folds it into the owning project's
// aggregates in one transaction. The project row is locked FOR UPDATE
// first: the read-modify-write on current_amount/backers_count is
// serialized per project, so concurrent pledges never undercount.
// A missing project fails the whole transaction; no pledge row survives
// without its aggregate update.
func (r *pledgeRepo) Create(ctx context.Context, p *model.Pledge) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", p.ProjectID).
			First(&project).Error
		if err != nil {
			return err
		}

		if err := tx.Create(p).Error; err != nil {
			return err
		}

		project.ApplyPledge(p.Amount)
		return tx.Model(&model.Project{}).
			Where("id = ?", project.ID).
			UpdateColumns(map[string]any{
				"current_amount": project.CurrentAmount,
				"backers_count":  project.BackersCount,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "project not found")
		}
		return apperr.Wrap(apperr.KindPersistence, "create pledge", err)
	}
	return nil
}

func (r *pledgeRepo) ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.Pledge, error) {
	var items []model.Pledge
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list pledges", err)
	}
	return items, nil
}
