package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoPlausiblePrice     = errors.New("no plausible price found in upstream response")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange     = errors.New("return date must not be before departure date")
	ErrUnknownTreatment     = errors.New("unknown treatment")
	ErrUnknownAccommodation = errors.New("unknown accommodation level")
	ErrOptionNotFound       = errors.New("option not found")
	ErrSessionNotFound      = errors.New("estimate session not found")
	ErrSessionBusy          = errors.New("estimate session is being updated, try again")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrValidation           = errors.New("validation failed")
)

// UnresolvedLocationError means the departure text maps to no airport code.
type UnresolvedLocationError struct {
	Input string
}

func (e *UnresolvedLocationError) Error() string {
	if e.Input == "" {
		return "Please enter your departure city or airport."
	}
	return "Unable to resolve departure airport. Please enter a 3-letter IATA code like JFK or LHR."
}

type InvalidAirportCodeError struct {
	Field string
	Code  string
}

func (e *InvalidAirportCodeError) Error() string {
	return fmt.Sprintf("invalid %s airport code %q: use a 3-letter IATA code (e.g. JFK, LHR)", e.Field, e.Code)
}

type MissingDatesError struct {
	Field string
}

func (e *MissingDatesError) Error() string {
	if e.Field == "" {
		return "missing travel dates"
	}
	return "missing travel dates: " + e.Field + " is required"
}

// UpstreamRequestError is a non-2xx answer from the travel-search provider.
type UpstreamRequestError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamRequestError) Error() string {
	return fmt.Sprintf("travel search request failed: %d %s", e.StatusCode, e.Body)
}

// IsBlocking reports whether err must stop an estimate before any pricing runs.
func IsBlocking(err error) bool {
	var unresolved *UnresolvedLocationError
	var invalidCode *InvalidAirportCodeError
	var missing *MissingDatesError
	return errors.As(err, &unresolved) ||
		errors.As(err, &invalidCode) ||
		errors.As(err, &missing) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrUnknownTreatment) ||
		errors.Is(err, ErrUnknownAccommodation)
}
