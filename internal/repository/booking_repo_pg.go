package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/jackc/pgx/v5"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, int, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, name, phone, service, date, time, dentist, country, created_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (name, phone, service, date, time, dentist, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		booking.Name, booking.Phone, booking.Service, booking.Date, booking.Time, booking.Dentist, booking.Country).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, notFound(err, domain.ErrBookingNotFound, id)
	}
	return b, nil
}

// List returns one page, newest first, plus the total row count.
func (r *PGBookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0, limit)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, total, rows.Err()
}

func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `UPDATE bookings SET name=$1, phone=$2, service=$3, date=$4, time=$5, dentist=$6, country=$7
		WHERE id=$8 RETURNING created_at`,
		booking.Name, booking.Phone, booking.Service, booking.Date, booking.Time, booking.Dentist, booking.Country, booking.ID).
		Scan(&booking.CreatedAt)
	return notFound(err, domain.ErrBookingNotFound, booking.ID)
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrBookingNotFound, id)
	}
	return nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Name, &b.Phone, &b.Service, &b.Date, &b.Time, &b.Dentist, &b.Country, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// notFound maps pgx.ErrNoRows onto the given sentinel.
func notFound(err, sentinel error, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %d", sentinel, id)
	}
	return err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
