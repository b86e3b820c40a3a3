package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	List(ctx context.Context, skip, limit int) ([]model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context, skip, limit int) ([]model.Project, error) {
	var items []model.Project
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list projects", err)
	}
	return items, nil
}

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "project not found")
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "get project", err)
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperr.Wrap(apperr.KindPersistence, "create project", err)
	}
	return nil
}

// Update applies only the fields present in updates; updated_at is
// refreshed even when the patch is empty.
func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}

		patched := make(map[string]any, len(updates)+1)
		for k, v := range updates {
			patched[k] = v
		}
		patched["updated_at"] = time.Now().UTC()

		if err := tx.Model(&p).Updates(patched).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&p).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "project not found")
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "update project", err)
	}
	return &p, nil
}

// Delete cascades to the project's pledges and updates via the FK
// constraints declared on the models.
func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if res.Error != nil {
		return apperr.Wrap(apperr.KindPersistence, "delete project", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "project not found")
	}
	return nil
}
