package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context, skip, limit int) ([]model.Project, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Project, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{name: "defaults applied", skip: 0, limit: 0, wantSkip: 0, wantLimit: 100},
		{name: "negative skip clamped", skip: -5, limit: 10, wantSkip: 0, wantLimit: 10},
		{name: "oversized limit capped", skip: 20, limit: 9999, wantSkip: 20, wantLimit: 500},
		{name: "passthrough", skip: 10, limit: 25, wantSkip: 10, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockProjectRepo{}
			repo.On("List", ctx, tt.wantSkip, tt.wantLimit).Return([]model.Project{}, nil)

			svc := NewProjectService(repo)
			_, err := svc.List(ctx, tt.skip, tt.limit)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		project    *model.Project
		setup      func(*MockProjectRepo)
		wantErr    bool
		wantKind   apperr.Kind
		wantStatus string
	}{
		{
			name: "successful creation defaults status to draft",
			project: &model.Project{
				Name:       "CubeSat Relay",
				GoalAmount: decimal.NewFromInt(500000),
				CreatorID:  uuid.New(),
			},
			setup: func(repo *MockProjectRepo) {
				repo.On("Create", ctx, mock.AnythingOfType("*model.Project")).Return(nil)
			},
			wantStatus: model.StatusDraft,
		},
		{
			name: "explicit status kept",
			project: &model.Project{
				Name:   "Debris Sweeper",
				Status: model.StatusActive,
			},
			setup: func(repo *MockProjectRepo) {
				repo.On("Create", ctx, mock.AnythingOfType("*model.Project")).Return(nil)
			},
			wantStatus: model.StatusActive,
		},
		{
			name:     "missing name rejected",
			project:  &model.Project{},
			setup:    func(repo *MockProjectRepo) {},
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name: "unknown status rejected",
			project: &model.Project{
				Name:   "Orbital Greenhouse",
				Status: "splashed_down",
			},
			setup:    func(repo *MockProjectRepo) {},
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockProjectRepo{}
			tt.setup(repo)

			svc := NewProjectService(repo)
			err := svc.Create(ctx, tt.project)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperr.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, tt.project.Status)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestProjectPatch_Updates(t *testing.T) {
	name := "Renamed"
	goal := decimal.NewFromInt(750000)
	status := model.StatusFunded

	tests := []struct {
		name     string
		patch    ProjectPatch
		wantKeys []string
	}{
		{
			name:     "empty patch maps nothing",
			patch:    ProjectPatch{},
			wantKeys: []string{},
		},
		{
			name:     "only set fields appear",
			patch:    ProjectPatch{Name: &name, GoalAmount: &goal},
			wantKeys: []string{"name", "goal_amount"},
		},
		{
			name:     "status only",
			patch:    ProjectPatch{Status: &status},
			wantKeys: []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.patch.Updates()
			assert.Len(t, u, len(tt.wantKeys))
			for _, k := range tt.wantKeys {
				assert.Contains(t, u, k)
			}
			// Aggregates never travel through a patch.
			assert.NotContains(t, u, "current_amount")
			assert.NotContains(t, u, "backers_count")
		})
	}
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	newName := "Renamed"
	badStatus := "deorbited"

	tests := []struct {
		name     string
		patch    ProjectPatch
		setup    func(*MockProjectRepo)
		wantErr  bool
		wantKind apperr.Kind
	}{
		{
			name:  "partial update reaches the repo",
			patch: ProjectPatch{Name: &newName},
			setup: func(repo *MockProjectRepo) {
				repo.On("Update", ctx, id, map[string]any{"name": newName}).
					Return(&model.Project{ID: id, Name: newName}, nil)
			},
		},
		{
			name:     "invalid status never reaches the repo",
			patch:    ProjectPatch{Status: &badStatus},
			setup:    func(repo *MockProjectRepo) {},
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name:  "missing project propagates not found",
			patch: ProjectPatch{Name: &newName},
			setup: func(repo *MockProjectRepo) {
				repo.On("Update", ctx, id, map[string]any{"name": newName}).
					Return(nil, apperr.New(apperr.KindNotFound, "project not found"))
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockProjectRepo{}
			tt.setup(repo)

			svc := NewProjectService(repo)
			p, err := svc.Update(ctx, id, tt.patch)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				assert.True(t, apperr.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, p)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("delete passes through", func(t *testing.T) {
		repo := &MockProjectRepo{}
		repo.On("Delete", ctx, id).Return(nil)

		assert.NoError(t, NewProjectService(repo).Delete(ctx, id))
		repo.AssertExpectations(t)
	})

	t.Run("missing project", func(t *testing.T) {
		repo := &MockProjectRepo{}
		repo.On("Delete", ctx, id).Return(apperr.New(apperr.KindNotFound, "project not found"))

		err := NewProjectService(repo).Delete(ctx, id)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
		repo.AssertExpectations(t)
	})
}

func TestApplyPledge(t *testing.T) {
	p := &model.Project{CurrentAmount: decimal.NewFromInt(100), BackersCount: 3}

	p.ApplyPledge(decimal.NewFromFloat(49.50))

	assert.True(t, p.CurrentAmount.Equal(decimal.NewFromFloat(149.50)))
	assert.Equal(t, 4, p.BackersCount)
}
