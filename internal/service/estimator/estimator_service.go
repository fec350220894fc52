package estimator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/estimate"
	"github.com/Domenick1991/dentaltrip/internal/location"
	"github.com/Domenick1991/dentaltrip/internal/service/flights"
	"github.com/Domenick1991/dentaltrip/internal/service/hotels"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type EstimateUseCase interface {
	Submit(ctx context.Context, trip domain.TripRequest) (*estimate.Session, error)
	Recalculate(ctx context.Context, id string) (*estimate.Session, error)
	Get(ctx context.Context, id string) (*estimate.Session, error)
	ChangeDates(ctx context.Context, id, outbound, ret string) (*estimate.Session, error)
	SelectFlight(ctx context.Context, id string, index int) (*estimate.Session, error)
	SelectHotelPick(ctx context.Context, id string, kind domain.HotelPickKind) (*estimate.Session, error)
	SelectHotelIndex(ctx context.Context, id string, index int) (*estimate.Session, error)
	ChangeTreatment(ctx context.Context, id, treatment string) (*estimate.Session, error)
	ChangeAccommodation(ctx context.Context, id, tier string) (*estimate.Session, error)
}

type SessionStore interface {
	GetSession(ctx context.Context, id string) (*estimate.Session, error)
	SaveSession(ctx context.Context, s *estimate.Session) error
	AcquireSessionLock(ctx context.Context, id string, ttl time.Duration) (string, error)
	ReleaseSessionLock(ctx context.Context, id, token string) error
}

type EstimateService struct {
	flights flights.FlightUseCase
	hotels  hotels.HotelUseCase
	store   SessionStore
	cfg     config.EstimatorConfig

	lockAttempts int
	lockDelay    time.Duration
	now          func() time.Time
	newID        func() string
}

type Option func(*EstimateService)

func WithClock(now func() time.Time) Option {
	return func(s *EstimateService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *EstimateService) {
		s.newID = newID
	}
}

// WithLockRetry sets how often a busy session lock is retried.
func WithLockRetry(attempts int, delay time.Duration) Option {
	return func(s *EstimateService) {
		s.lockAttempts = attempts
		s.lockDelay = delay
	}
}

func NewEstimateService(f flights.FlightUseCase, h hotels.HotelUseCase, store SessionStore, cfg config.EstimatorConfig, opts ...Option) *EstimateService {
	s := &EstimateService{
		flights:      f,
		hotels:       h,
		store:        store,
		cfg:          cfg,
		lockAttempts: 10,
		lockDelay:    50 * time.Millisecond,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs the pre-flight checks, opens a session and prices both halves
// concurrently. Checks that fail here block the estimate; upstream trouble
// only degrades it.
func (s *EstimateService) Submit(ctx context.Context, trip domain.TripRequest) (*estimate.Session, error) {
	code, err := location.Resolve(trip.Departure)
	if err != nil {
		return nil, err
	}
	if trip.Accommodation == "" {
		trip.Accommodation = domain.DefaultAccommodation
	}
	if err := validateTrip(trip); err != nil {
		return nil, err
	}
	dest, err := domain.ParseAirportCode("arrival", s.cfg.DestinationCode)
	if err != nil {
		return nil, err
	}
	trip.Destination = dest.String()

	sess := estimate.NewSession(s.newID(), trip, code, s.now())
	fg := sess.BeginFlightFetch()
	hg := sess.BeginHotelFetch()
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Printf("[estimate] %s: submitted %s->%s %s/%s treatment=%s", sess.ID, code, trip.Destination, trip.OutboundDate, trip.ReturnDate, trip.Treatment)

	return s.priceBoth(ctx, sess, fg, hg)
}

// Recalculate re-prices both halves of an existing session.
func (s *EstimateService) Recalculate(ctx context.Context, id string) (*estimate.Session, error) {
	var fg, hg uint64
	sess, err := s.mutate(ctx, id, func(sess *estimate.Session) error {
		if err := validateTrip(sess.Trip); err != nil {
			return err
		}
		fg = sess.BeginFlightFetch()
		hg = sess.BeginHotelFetch()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.priceBoth(ctx, sess, fg, hg)
}

func (s *EstimateService) Get(ctx context.Context, id string) (*estimate.Session, error) {
	return s.store.GetSession(ctx, id)
}

// ChangeDates stores new dates and refreshes hotel data. Flight prices stay
// as they were until the next Recalculate.
func (s *EstimateService) ChangeDates(ctx context.Context, id, outbound, ret string) (*estimate.Session, error) {
	var (
		refetch bool
		gen     uint64
	)
	sess, err := s.mutate(ctx, id, func(sess *estimate.Session) error {
		var err error
		refetch, err = sess.SetDates(outbound, ret)
		if err != nil {
			return err
		}
		if refetch {
			gen = sess.BeginHotelFetch()
		}
		return nil
	})
	if err != nil || !refetch {
		return sess, err
	}

	quote, err := s.hotels.PriceHotels(ctx, outbound, ret)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(sess *estimate.Session) error {
		s.applyHotels(sess, gen, quote)
		return nil
	})
}

func (s *EstimateService) SelectFlight(ctx context.Context, id string, index int) (*estimate.Session, error) {
	return s.mutate(ctx, id, func(sess *estimate.Session) error {
		return sess.SelectFlight(index)
	})
}

func (s *EstimateService) SelectHotelPick(ctx context.Context, id string, kind domain.HotelPickKind) (*estimate.Session, error) {
	return s.mutate(ctx, id, func(sess *estimate.Session) error {
		return sess.SelectHotelPick(kind)
	})
}

func (s *EstimateService) SelectHotelIndex(ctx context.Context, id string, index int) (*estimate.Session, error) {
	return s.mutate(ctx, id, func(sess *estimate.Session) error {
		return sess.SelectHotelIndex(index)
	})
}

func (s *EstimateService) ChangeTreatment(ctx context.Context, id, treatment string) (*estimate.Session, error) {
	return s.mutate(ctx, id, func(sess *estimate.Session) error {
		return sess.SetTreatment(treatment)
	})
}

func (s *EstimateService) ChangeAccommodation(ctx context.Context, id, tier string) (*estimate.Session, error) {
	return s.mutate(ctx, id, func(sess *estimate.Session) error {
		return sess.SetAccommodation(tier)
	})
}

// priceBoth fetches flights and hotels outside the session lock and applies
// whichever results are still current.
func (s *EstimateService) priceBoth(ctx context.Context, sess *estimate.Session, fg, hg uint64) (*estimate.Session, error) {
	var (
		flightQuote *domain.FlightQuote
		hotelQuote  *domain.HotelQuote
	)
	trip := sess.Trip

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.flights.PriceFlights(gctx, sess.DepartureCode.String(), trip.Destination, trip.OutboundDate, trip.ReturnDate)
		flightQuote = q
		return err
	})
	g.Go(func() error {
		q, err := s.hotels.PriceHotels(gctx, trip.OutboundDate, trip.ReturnDate)
		hotelQuote = q
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, sess.ID, func(cur *estimate.Session) error {
		if !cur.ApplyFlights(fg, flightQuote) {
			log.Printf("[estimate] %s: dropped stale flight result (generation %d, current %d)", cur.ID, fg, cur.FlightGeneration)
		}
		s.applyHotels(cur, hg, hotelQuote)
		return nil
	})
}

func (s *EstimateService) applyHotels(sess *estimate.Session, gen uint64, quote *domain.HotelQuote) {
	if !sess.ApplyHotels(gen, quote) {
		log.Printf("[estimate] %s: dropped stale hotel result (generation %d, current %d)", sess.ID, gen, sess.HotelGeneration)
	}
}

// mutate loads the session under its lock, applies fn and saves the result.
// Nothing is saved when fn fails.
func (s *EstimateService) mutate(ctx context.Context, id string, fn func(*estimate.Session) error) (*estimate.Session, error) {
	token, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.store.ReleaseSessionLock(context.WithoutCancel(ctx), id, token); err != nil {
			log.Printf("[estimate] %s: release lock: %v", id, err)
		}
	}()

	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = s.now()
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *EstimateService) lock(ctx context.Context, id string) (string, error) {
	for attempt := 0; attempt < s.lockAttempts; attempt++ {
		token, err := s.store.AcquireSessionLock(ctx, id, s.cfg.LockTTL())
		if err != nil {
			return "", fmt.Errorf("lock session: %w", err)
		}
		if token != "" {
			return token, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.lockDelay):
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrSessionBusy, id)
}

func validateTrip(trip domain.TripRequest) error {
	if _, err := domain.LookupTreatment(trip.Treatment); err != nil {
		return err
	}
	if _, err := domain.LookupAccommodation(trip.Accommodation); err != nil {
		return err
	}
	if _, _, err := trip.Dates(); err != nil {
		return err
	}
	return nil
}

var _ EstimateUseCase = (*EstimateService)(nil)
