package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/dentaltrip/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]domain.ClinicService, error)
	GetByID(ctx context.Context, id int64) (*domain.ClinicService, error)
	Create(ctx context.Context, svc *domain.ClinicService) error
	Update(ctx context.Context, svc *domain.ClinicService) error
	Delete(ctx context.Context, id int64) error
}

type PGServiceRepository struct {
	db DB
}

func NewServiceRepository(db DB) ServiceRepository {
	return &PGServiceRepository{db: db}
}

func (r *PGServiceRepository) List(ctx context.Context) ([]domain.ClinicService, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, price, details FROM services ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]domain.ClinicService, 0)
	for rows.Next() {
		var s domain.ClinicService
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.Details); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PGServiceRepository) GetByID(ctx context.Context, id int64) (*domain.ClinicService, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, description, price, details FROM services WHERE id=$1`, id)
	var s domain.ClinicService
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.Details); err != nil {
		return nil, notFound(err, domain.ErrServiceNotFound, id)
	}
	return &s, nil
}

func (r *PGServiceRepository) Create(ctx context.Context, svc *domain.ClinicService) error {
	return r.db.QueryRow(ctx, `INSERT INTO services (title, description, price, details) VALUES ($1, $2, $3, $4) RETURNING id`,
		svc.Title, svc.Description, svc.Price, details(svc.Details)).Scan(&svc.ID)
}

func (r *PGServiceRepository) Update(ctx context.Context, svc *domain.ClinicService) error {
	cmd, err := r.db.Exec(ctx, `UPDATE services SET title=$1, description=$2, price=$3, details=$4 WHERE id=$5`,
		svc.Title, svc.Description, svc.Price, details(svc.Details), svc.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrServiceNotFound, svc.ID)
	}
	return nil
}

func (r *PGServiceRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrServiceNotFound, id)
	}
	return nil
}

// details keeps NOT NULL satisfied for services without bullets.
func details(d []string) []string {
	if d == nil {
		return []string{}
	}
	return d
}

var _ ServiceRepository = (*PGServiceRepository)(nil)
