package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceCols = []string{"id", "title", "description", "price", "details"}

func TestServiceRepository_List(t *testing.T) {
	pool := newMockPool(t)
	repo := NewServiceRepository(pool)

	pool.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, description, price, details FROM services ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows(serviceCols).
			AddRow(int64(1), "Dental Implants", "Permanent tooth replacement", 800.0, []string{"Titanium posts", "Lifetime warranty"}).
			AddRow(int64(2), "Veneers", "", 250.0, []string{}))

	services, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Dental Implants", services[0].Title)
	assert.Equal(t, []string{"Titanium posts", "Lifetime warranty"}, services[0].Details)
	assert.Equal(t, 250.0, services[1].Price)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestServiceRepository_CreateDefaultsDetails(t *testing.T) {
	pool := newMockPool(t)
	repo := NewServiceRepository(pool)

	pool.ExpectQuery(regexp.QuoteMeta(`INSERT INTO services`)).
		WithArgs("Whitening", "Laser whitening", 150.0, []string{}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	svc := &domain.ClinicService{Title: "Whitening", Description: "Laser whitening", Price: 150}
	require.NoError(t, repo.Create(context.Background(), svc))

	assert.Equal(t, int64(7), svc.ID)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestServiceRepository_NotFound(t *testing.T) {
	pool := newMockPool(t)
	repo := NewServiceRepository(pool)
	ctx := context.Background()

	pool.ExpectQuery(regexp.QuoteMeta(`FROM services WHERE id=$1`)).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)
	pool.ExpectExec(regexp.QuoteMeta(`UPDATE services SET`)).
		WithArgs("X", "", 0.0, []string{}, int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	pool.ExpectExec(regexp.QuoteMeta(`DELETE FROM services WHERE id=$1`)).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	_, err := repo.GetByID(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &domain.ClinicService{ID: 9, Title: "X"}), domain.ErrServiceNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 9), domain.ErrServiceNotFound)
	assert.NoError(t, pool.ExpectationsWereMet())
}
