package booking

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/kafka"
	"github.com/Domenick1991/dentaltrip/internal/repository"
)

const defaultItemsPerPage = 8

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input BookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookings(ctx context.Context, page, itemsPerPage int) (*domain.BookingPage, error)
	UpdateBooking(ctx context.Context, id int64, input BookingInput) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	itemsPerPage       int
	now                func() time.Time
}

type BookingInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required,isodate"`
	Time    string `json:"time"`
	Dentist string `json:"dentist"`
	Country string `json:"country"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithItemsPerPage(n int) BookingServiceOption {
	return func(s *BookingService) {
		s.itemsPerPage = n
	}
}

// NewBookingService wires the repository and, when producer is non-nil,
// event publishing to bookingTopic.
func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
		itemsPerPage: defaultItemsPerPage,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input BookingInput) (*domain.Booking, error) {
	input = input.trimmed()
	if err := input.validate(); err != nil {
		return nil, err
	}

	booking := input.toBooking()
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		log.Printf("[bookings] failed to publish %s for booking %d: %v", kafka.EventBookingCreated, booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// ListBookings returns one page, newest first. Out-of-range page numbers
// are clamped to 1; a non-positive page size uses the configured default.
func (s *BookingService) ListBookings(ctx context.Context, page, itemsPerPage int) (*domain.BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if itemsPerPage < 1 {
		itemsPerPage = s.itemsPerPage
	}

	bookings, total, err := s.bookings.List(ctx, itemsPerPage, (page-1)*itemsPerPage)
	if err != nil {
		return nil, err
	}

	return &domain.BookingPage{
		Data:         bookings,
		TotalItems:   total,
		TotalPages:   (total + itemsPerPage - 1) / itemsPerPage,
		CurrentPage:  page,
		ItemsPerPage: itemsPerPage,
	}, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int64, input BookingInput) (*domain.Booking, error) {
	input = input.trimmed()
	if err := input.validate(); err != nil {
		return nil, err
	}

	booking := input.toBooking()
	booking.ID = id
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventBookingUpdated, booking); err != nil {
		log.Printf("[bookings] failed to publish %s for booking %d: %v", kafka.EventBookingUpdated, id, err)
	}
	return booking, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.publish(ctx, kafka.EventBookingDeleted, &domain.Booking{ID: id}); err != nil {
		log.Printf("[bookings] failed to publish %s for booking %d: %v", kafka.EventBookingDeleted, id, err)
	}
	return nil
}

// publish sends every event to the booking topic and new requests to the
// notifications topic as well.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		Name:       booking.Name,
		Phone:      booking.Phone,
		Service:    booking.Service,
		Date:       booking.Date,
		Time:       booking.Time,
		Dentist:    booking.Dentist,
		Country:    booking.Country,
		OccurredAt: s.now(),
	}
	key := strconv.FormatInt(booking.ID, 10)
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" && eventType == kafka.EventBookingCreated {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

func (in BookingInput) trimmed() BookingInput {
	return BookingInput{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Service: strings.TrimSpace(in.Service),
		Date:    strings.TrimSpace(in.Date),
		Time:    strings.TrimSpace(in.Time),
		Dentist: strings.TrimSpace(in.Dentist),
		Country: strings.TrimSpace(in.Country),
	}
}

func (in BookingInput) validate() error {
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case in.Phone == "":
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	case in.Service == "":
		return fmt.Errorf("%w: service is required", domain.ErrValidation)
	case in.Date == "":
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return nil
}

func (in BookingInput) toBooking() *domain.Booking {
	return &domain.Booking{
		Name:    in.Name,
		Phone:   in.Phone,
		Service: in.Service,
		Date:    in.Date,
		Time:    in.Time,
		Dentist: in.Dentist,
		Country: in.Country,
	}
}

var _ BookingUseCase = (*BookingService)(nil)
