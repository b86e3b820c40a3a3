package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
)

type PostService interface {
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Create(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postService struct{ r repo.PostRepo }

func NewPostService(r repo.PostRepo) PostService {
	return &postService{r: r}
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	return s.r.List(ctx)
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return s.r.Get(ctx, id)
}

func (s *postService) Create(ctx context.Context, p *model.Post) error {
	if p.Title == "" || p.Body == "" {
		return apperr.New(apperr.KindInvalidInput, "title and body are required")
	}
	return s.r.Create(ctx, p)
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}
