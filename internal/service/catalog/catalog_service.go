package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/repository"
)

type CatalogUseCase interface {
	ListServices(ctx context.Context) ([]domain.ClinicService, error)
	GetService(ctx context.Context, id int64) (*domain.ClinicService, error)
	CreateService(ctx context.Context, input ServiceInput) (*domain.ClinicService, error)
	UpdateService(ctx context.Context, id int64, input ServiceInput) (*domain.ClinicService, error)
	DeleteService(ctx context.Context, id int64) error
}

type ServiceInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	Details     []string `json:"details"`
}

type CatalogService struct {
	services repository.ServiceRepository
}

func NewCatalogService(services repository.ServiceRepository) *CatalogService {
	return &CatalogService{services: services}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]domain.ClinicService, error) {
	return s.services.List(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id int64) (*domain.ClinicService, error) {
	return s.services.GetByID(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*domain.ClinicService, error) {
	svc, err := input.toService()
	if err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id int64, input ServiceInput) (*domain.ClinicService, error) {
	svc, err := input.toService()
	if err != nil {
		return nil, err
	}
	svc.ID = id
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	return s.services.Delete(ctx, id)
}

// toService trims text fields and drops blank detail bullets.
func (in ServiceInput) toService() (*domain.ClinicService, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	details := make([]string, 0, len(in.Details))
	for _, d := range in.Details {
		if d = strings.TrimSpace(d); d != "" {
			details = append(details, d)
		}
	}
	return &domain.ClinicService{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Details:     details,
	}, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
