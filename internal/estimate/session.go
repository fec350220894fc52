// Package estimate holds the state of one cost-estimation session and the
// transitions that change it. Every transition rebuilds the breakdown from
// the current inputs.
package estimate

import (
	"fmt"
	"time"

	"github.com/Domenick1991/dentaltrip/internal/cost"
	"github.com/Domenick1991/dentaltrip/internal/domain"
)

type Session struct {
	ID            string             `json:"id"`
	Trip          domain.TripRequest `json:"trip"`
	DepartureCode domain.AirportCode `json:"departure_code"`

	Flights        *domain.FlightQuote    `json:"flights"`
	Hotels         *domain.HotelQuote     `json:"hotels"`
	SelectedFlight *domain.FlightOption   `json:"selected_flight"`
	SelectedHotel  *domain.HotelCandidate `json:"selected_hotel"`

	// Generations are bumped when a fetch starts; a result tagged with an
	// older generation is dropped.
	FlightGeneration uint64 `json:"flight_generation"`
	HotelGeneration  uint64 `json:"hotel_generation"`

	FlightWarning string `json:"flight_warning,omitempty"`
	HotelWarning  string `json:"hotel_warning,omitempty"`

	Breakdown domain.CostBreakdown `json:"breakdown"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id string, trip domain.TripRequest, departure domain.AirportCode, now time.Time) *Session {
	if trip.Accommodation == "" {
		trip.Accommodation = domain.DefaultAccommodation
	}
	s := &Session{
		ID:            id,
		Trip:          trip,
		DepartureCode: departure,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.Recompute()
	return s
}

func (s *Session) BeginFlightFetch() uint64 {
	s.FlightGeneration++
	return s.FlightGeneration
}

// ApplyFlights installs a flight quote and resets the selection to its
// default. It reports false when gen is stale.
func (s *Session) ApplyFlights(gen uint64, quote *domain.FlightQuote) bool {
	if gen != s.FlightGeneration {
		return false
	}
	s.Flights = quote
	s.SelectedFlight = nil
	s.FlightWarning = ""
	if quote != nil {
		s.SelectedFlight = cloneFlight(quote.Selected)
		s.FlightWarning = quote.Warning
	}
	s.Recompute()
	return true
}

func (s *Session) BeginHotelFetch() uint64 {
	s.HotelGeneration++
	return s.HotelGeneration
}

// ApplyHotels installs a hotel quote and selects its cheapest pick. It
// reports false when gen is stale.
func (s *Session) ApplyHotels(gen uint64, quote *domain.HotelQuote) bool {
	if gen != s.HotelGeneration {
		return false
	}
	s.Hotels = quote
	s.SelectedHotel = nil
	s.HotelWarning = ""
	if quote != nil {
		s.SelectedHotel = cloneHotel(quote.Picks.Cheapest)
		s.HotelWarning = quote.Warning
	}
	s.Recompute()
	return true
}

// ClearHotels drops hotel data and invalidates any hotel fetch in flight.
func (s *Session) ClearHotels() {
	s.HotelGeneration++
	s.Hotels = nil
	s.SelectedHotel = nil
	s.HotelWarning = ""
	s.Recompute()
}

// SetDates stores new travel dates. It reports whether hotels should be
// fetched again: true when both dates are set, otherwise hotel data is
// cleared. Flights are left as they are.
func (s *Session) SetDates(outbound, ret string) (bool, error) {
	if outbound != "" && ret != "" {
		if _, _, err := domain.ParseDateRange(outbound, ret); err != nil {
			return false, err
		}
	}
	s.Trip.OutboundDate = outbound
	s.Trip.ReturnDate = ret
	if !s.Trip.HasDates() {
		s.ClearHotels()
		return false, nil
	}
	s.Recompute()
	return true, nil
}

// SelectFlight picks a ranked option by position.
func (s *Session) SelectFlight(index int) error {
	if s.Flights == nil || index < 0 || index >= len(s.Flights.Options) {
		return fmt.Errorf("%w: flight option %d", domain.ErrOptionNotFound, index)
	}
	opt := s.Flights.Options[index]
	s.SelectedFlight = &opt
	s.FlightWarning = ""
	s.Recompute()
	return nil
}

func (s *Session) SelectHotelPick(kind domain.HotelPickKind) error {
	if s.Hotels == nil {
		return fmt.Errorf("%w: no hotel results", domain.ErrOptionNotFound)
	}
	c, err := s.Hotels.Picks.Get(kind)
	if err != nil {
		return err
	}
	s.SelectedHotel = cloneHotel(c)
	s.HotelWarning = ""
	s.Recompute()
	return nil
}

// SelectHotelIndex picks any hotel candidate by position.
func (s *Session) SelectHotelIndex(index int) error {
	if s.Hotels == nil || index < 0 || index >= len(s.Hotels.Candidates) {
		return fmt.Errorf("%w: hotel candidate %d", domain.ErrOptionNotFound, index)
	}
	c := s.Hotels.Candidates[index]
	s.SelectedHotel = &c
	s.HotelWarning = ""
	s.Recompute()
	return nil
}

func (s *Session) SetTreatment(value string) error {
	if _, err := domain.LookupTreatment(value); err != nil {
		return err
	}
	s.Trip.Treatment = value
	s.Recompute()
	return nil
}

// SetAccommodation changes the tier. A selected hotel keeps priority over
// the tier's flat rate.
func (s *Session) SetAccommodation(value string) error {
	if _, err := domain.LookupAccommodation(value); err != nil {
		return err
	}
	s.Trip.Accommodation = value
	s.Recompute()
	return nil
}

// Recompute rebuilds the breakdown from scratch.
func (s *Session) Recompute() {
	s.Breakdown = cost.Aggregate(s.treatmentPrice(), s.Nights(), s.NightlyRate(), s.FlightPrice())
}

// Nights is 0 until both dates are set and valid.
func (s *Session) Nights() int {
	out, ret, err := s.Trip.Dates()
	if err != nil {
		return 0
	}
	return domain.Nights(out, ret)
}

// NightlyRate is the selected hotel, else the cheapest pick, else the flat
// rate of the chosen tier.
func (s *Session) NightlyRate() float64 {
	if s.SelectedHotel != nil {
		return s.SelectedHotel.PricePerNight
	}
	if s.Hotels != nil && s.Hotels.Picks.Cheapest != nil {
		return s.Hotels.Picks.Cheapest.PricePerNight
	}
	tier, err := domain.LookupAccommodation(s.Trip.Accommodation)
	if err != nil {
		return 0
	}
	return tier.Price
}

// HotelPriced reports whether the nightly rate comes from a real hotel.
func (s *Session) HotelPriced() bool {
	return s.SelectedHotel != nil || (s.Hotels != nil && s.Hotels.Picks.Cheapest != nil)
}

func (s *Session) FlightPrice() float64 {
	if s.SelectedFlight != nil {
		return s.SelectedFlight.Price
	}
	return s.Flights.Price()
}

func (s *Session) Warnings() []string {
	var out []string
	if s.FlightWarning != "" {
		out = append(out, s.FlightWarning)
	}
	if s.HotelWarning != "" {
		out = append(out, s.HotelWarning)
	}
	return out
}

func (s *Session) treatmentPrice() float64 {
	t, err := domain.LookupTreatment(s.Trip.Treatment)
	if err != nil {
		return 0
	}
	return t.Price
}

func cloneFlight(o *domain.FlightOption) *domain.FlightOption {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func cloneHotel(h *domain.HotelCandidate) *domain.HotelCandidate {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}
