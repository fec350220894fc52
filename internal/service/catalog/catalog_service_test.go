package catalog

import (
	"context"
	"testing"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context) ([]domain.ClinicService, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ClinicService), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.ClinicService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClinicService), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, svc *domain.ClinicService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, svc *domain.ClinicService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCatalogService_CreateService(t *testing.T) {
	repo := &MockServiceRepository{}
	service := NewCatalogService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(s *domain.ClinicService) bool {
		return s.Title == "Veneers" && len(s.Details) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.ClinicService).ID = 3
	}).Return(nil).Once()

	svc, err := service.CreateService(ctx, ServiceInput{
		Title:   " Veneers ",
		Price:   250,
		Details: []string{"Porcelain", " ", "Same-week fitting"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), svc.ID)
	assert.Equal(t, []string{"Porcelain", "Same-week fitting"}, svc.Details)
	repo.AssertExpectations(t)
}

func TestCatalogService_Validation(t *testing.T) {
	repo := &MockServiceRepository{}
	service := NewCatalogService(repo)
	ctx := context.Background()

	_, err := service.CreateService(ctx, ServiceInput{Title: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.UpdateService(ctx, 1, ServiceInput{Title: "Crowns", Price: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateAndDelete(t *testing.T) {
	repo := &MockServiceRepository{}
	service := NewCatalogService(repo)
	ctx := context.Background()

	repo.On("Update", ctx, mock.MatchedBy(func(s *domain.ClinicService) bool { return s.ID == 4 })).Return(nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(s *domain.ClinicService) bool { return s.ID == 5 })).Return(domain.ErrServiceNotFound).Once()
	repo.On("Delete", ctx, int64(4)).Return(nil).Once()

	svc, err := service.UpdateService(ctx, 4, ServiceInput{Title: "Crowns", Price: 300})
	require.NoError(t, err)
	assert.Equal(t, int64(4), svc.ID)
	assert.Empty(t, svc.Details)

	_, err = service.UpdateService(ctx, 5, ServiceInput{Title: "Crowns"})
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	assert.NoError(t, service.DeleteService(ctx, 4))
	repo.AssertExpectations(t)
}

func TestCatalogService_ListServices(t *testing.T) {
	repo := &MockServiceRepository{}
	service := NewCatalogService(repo)
	ctx := context.Background()

	want := []domain.ClinicService{{ID: 1, Title: "Dental Implants", Price: 800}}
	repo.On("List", ctx).Return(want, nil).Once()

	got, err := service.ListServices(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
