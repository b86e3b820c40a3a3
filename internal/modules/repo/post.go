package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

type PostRepo interface {
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Create(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) PostRepo {
	return &postRepo{db: db}
}

func (r *postRepo) List(ctx context.Context) ([]model.Post, error) {
	var items []model.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list posts", err)
	}
	return items, nil
}

func (r *postRepo) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "post not found")
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "get post", err)
	}
	return &p, nil
}

func (r *postRepo) Create(ctx context.Context, p *model.Post) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperr.Wrap(apperr.KindPersistence, "create post", err)
	}
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return apperr.Wrap(apperr.KindPersistence, "delete post", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "post not found")
	}
	return nil
}
