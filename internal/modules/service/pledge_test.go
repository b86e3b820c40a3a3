package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockPledgeRepo is a mock implementation of PledgeRepo
type MockPledgeRepo struct {
	mock.Mock
}

func (m *MockPledgeRepo) Create(ctx context.Context, p *model.Pledge) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPledgeRepo) ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.Pledge, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pledge), args.Error(1)
}

func TestPledgeService_Create(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name     string
		input    CreatePledgeInput
		setup    func(*MockPledgeRepo)
		wantErr  bool
		wantKind apperr.Kind
	}{
		{
			name: "successful pledge",
			input: CreatePledgeInput{
				ProjectID: projectID,
				UserID:    userID,
				Amount:    decimal.NewFromInt(2500),
			},
			setup: func(repo *MockPledgeRepo) {
				repo.On("Create", ctx, mock.AnythingOfType("*model.Pledge")).Return(nil)
			},
		},
		{
			name: "zero amount rejected before the repo is touched",
			input: CreatePledgeInput{
				ProjectID: projectID,
				UserID:    userID,
				Amount:    decimal.Zero,
			},
			setup:    func(repo *MockPledgeRepo) {},
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name: "negative amount rejected",
			input: CreatePledgeInput{
				ProjectID: projectID,
				UserID:    userID,
				Amount:    decimal.NewFromInt(-10),
			},
			setup:    func(repo *MockPledgeRepo) {},
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name: "missing project surfaces as not found",
			input: CreatePledgeInput{
				ProjectID: projectID,
				UserID:    userID,
				Amount:    decimal.NewFromInt(100),
			},
			setup: func(repo *MockPledgeRepo) {
				repo.On("Create", ctx, mock.AnythingOfType("*model.Pledge")).
					Return(apperr.New(apperr.KindNotFound, "project not found"))
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockPledgeRepo{}
			tt.setup(repo)

			svc := NewPledgeService(repo, zap.NewNop(), nil)
			pledge, err := svc.Create(ctx, tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, pledge)
				assert.True(t, apperr.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, pledge)
				assert.Equal(t, tt.input.ProjectID, pledge.ProjectID)
				assert.True(t, tt.input.Amount.Equal(pledge.Amount))
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestPledgeService_ListForProject(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	repo := &MockPledgeRepo{}
	repo.On("ListForProject", ctx, projectID).Return([]model.Pledge{
		{ID: uuid.New(), ProjectID: projectID, Amount: decimal.NewFromInt(50)},
		{ID: uuid.New(), ProjectID: projectID, Amount: decimal.NewFromInt(75)},
	}, nil)

	svc := NewPledgeService(repo, zap.NewNop(), nil)
	items, err := svc.ListForProject(ctx, projectID)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	repo.AssertExpectations(t)
}

// MockEventPublisher is a mock implementation of queue.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishJSON(ctx context.Context, v any) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func TestPledgeService_Create_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	userID := uuid.New()

	repo := &MockPledgeRepo{}
	repo.On("Create", ctx, mock.AnythingOfType("*model.Pledge")).Return(nil)

	pub := &MockEventPublisher{}
	pub.On("PublishJSON", ctx, mock.MatchedBy(func(v any) bool {
		ev, ok := v.(PledgeCreatedEvent)
		return ok && ev.Kind == "pledge.created" &&
			ev.ProjectID == projectID &&
			ev.UserID == userID &&
			ev.Amount.Equal(decimal.NewFromInt(2500))
	})).Return(nil)

	svc := NewPledgeService(repo, zap.NewNop(), pub)
	pledge, err := svc.Create(ctx, CreatePledgeInput{
		ProjectID: projectID,
		UserID:    userID,
		Amount:    decimal.NewFromInt(2500),
	})

	assert.NoError(t, err)
	assert.NotNil(t, pledge)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

// A failed publish must reach the caller, never get logged away.
func TestPledgeService_Create_PublishFailureReturned(t *testing.T) {
	ctx := context.Background()

	repo := &MockPledgeRepo{}
	repo.On("Create", ctx, mock.AnythingOfType("*model.Pledge")).Return(nil)

	pub := &MockEventPublisher{}
	pub.On("PublishJSON", ctx, mock.AnythingOfType("PledgeCreatedEvent")).
		Return(errors.New("channel closed"))

	svc := NewPledgeService(repo, zap.NewNop(), pub)
	pledge, err := svc.Create(ctx, CreatePledgeInput{
		ProjectID: uuid.New(),
		UserID:    uuid.New(),
		Amount:    decimal.NewFromInt(100),
	})

	assert.Error(t, err)
	assert.Nil(t, pledge)
	assert.True(t, apperr.IsKind(err, apperr.KindPersistence))
	assert.Contains(t, err.Error(), "channel closed")
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

// serialPledgeRepo mimics the real repo's transaction: take the project
// lock, insert the pledge, fold it into the aggregates, release. The
// mutex plays the part of the row lock.
type serialPledgeRepo struct {
	mu      sync.Mutex
	project *model.Project
	pledges []model.Pledge
}

func (r *serialPledgeRepo) Create(ctx context.Context, p *model.Pledge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ProjectID != r.project.ID {
		return apperr.New(apperr.KindNotFound, "project not found")
	}
	r.pledges = append(r.pledges, *p)
	r.project.ApplyPledge(p.Amount)
	return nil
}

func (r *serialPledgeRepo) ListForProject(ctx context.Context, projectID uuid.UUID) ([]model.Pledge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Pledge, len(r.pledges))
	copy(out, r.pledges)
	return out, nil
}

// Two pledges landing at once must both count: 175,000 + 25,000 ends at
// exactly 200,000 with two backers, never at one pledge's result.
func TestPledgeService_ConcurrentPledgesBothCount(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	repo := &serialPledgeRepo{
		project: &model.Project{
			ID:            projectID,
			CurrentAmount: decimal.Zero,
		},
	}
	svc := NewPledgeService(repo, zap.NewNop(), nil)

	amounts := []decimal.Decimal{
		decimal.NewFromInt(175000),
		decimal.NewFromInt(25000),
	}

	var wg sync.WaitGroup
	for _, amount := range amounts {
		wg.Add(1)
		go func(a decimal.Decimal) {
			defer wg.Done()
			_, err := svc.Create(ctx, CreatePledgeInput{
				ProjectID: projectID,
				UserID:    uuid.New(),
				Amount:    a,
			})
			assert.NoError(t, err)
		}(amount)
	}
	wg.Wait()

	assert.True(t, repo.project.CurrentAmount.Equal(decimal.NewFromInt(200000)),
		"current_amount should be 200000, got %s", repo.project.CurrentAmount)
	assert.Equal(t, 2, repo.project.BackersCount)
	assert.Len(t, repo.pledges, 2)
}

// Many concurrent pledges of the same size: the aggregate must equal
// the exact sum, with one backer counted per pledge.
func TestPledgeService_ConcurrentAggregateExact(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	repo := &serialPledgeRepo{
		project: &model.Project{
			ID:            projectID,
			CurrentAmount: decimal.Zero,
		},
	}
	svc := NewPledgeService(repo, zap.NewNop(), nil)

	const n = 50
	amount := decimal.NewFromFloat(19.99)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, CreatePledgeInput{
				ProjectID: projectID,
				UserID:    uuid.New(),
				Amount:    amount,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	want := amount.Mul(decimal.NewFromInt(n))
	assert.True(t, repo.project.CurrentAmount.Equal(want),
		"current_amount should be %s, got %s", want, repo.project.CurrentAmount)
	assert.Equal(t, n, repo.project.BackersCount)
}
