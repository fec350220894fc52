package domain

import "time"

// Booking is a consultation request stored in the record store.
type Booking struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Dentist   string    `json:"dentist"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// ClinicService is a catalog entry shown on the services page and used by
// the booking form.
type ClinicService struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Details     []string `json:"details"`
}

type BookingPage struct {
	Data         []Booking `json:"data"`
	TotalItems   int       `json:"totalItems"`
	TotalPages   int       `json:"totalPages"`
	CurrentPage  int       `json:"currentPage"`
	ItemsPerPage int       `json:"itemsPerPage"`
}
