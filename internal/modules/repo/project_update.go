package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

type ProjectUpdateRepo interface {
	Create(ctx context.Context, u *model.ProjectUpdate) error
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectUpdate, error)
}

type projectUpdateRepo struct{ db *gorm.DB }

func NewProjectUpdateRepo(db *gorm.DB) ProjectUpdateRepo {
	return &projectUpdateRepo{db: db}
}

func (r *projectUpdateRepo) Create(ctx context.Context, u *model.ProjectUpdate) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.Select("id").Where("id = ?", u.ProjectID).First(&project).Error; err != nil {
			return err
		}
		return tx.Create(u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "project not found")
		}
		return apperr.Wrap(apperr.KindPersistence, "create project update", err)
	}
	return nil
}

func (r *projectUpdateRepo) ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectUpdate, error) {
	var items []model.ProjectUpdate
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list project updates", err)
	}
	return items, nil
}
