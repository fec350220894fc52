package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// AirportCode is a resolved 3-letter token. It is not checked against a
// real airport database.
type AirportCode string

var airportCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// ParseAirportCode applies the strict 3-letter alphabetic check and
// upper-cases the result.
func ParseAirportCode(field, raw string) (AirportCode, error) {
	if !airportCodePattern.MatchString(raw) {
		return "", &InvalidAirportCodeError{Field: field, Code: raw}
	}
	return AirportCode(strings.ToUpper(raw)), nil
}

func (c AirportCode) String() string {
	return string(c)
}

type TripRequest struct {
	Departure     string `json:"departure"`
	Destination   string `json:"destination"`
	OutboundDate  string `json:"outbound_date"`
	ReturnDate    string `json:"return_date"`
	Treatment     string `json:"treatment"`
	Accommodation string `json:"accommodation"`
}

func (t TripRequest) HasDates() bool {
	return t.OutboundDate != "" && t.ReturnDate != ""
}

// Dates parses both travel dates and enforces outbound <= return.
func (t TripRequest) Dates() (time.Time, time.Time, error) {
	return ParseDateRange(t.OutboundDate, t.ReturnDate)
}

func ParseDateRange(outbound, ret string) (time.Time, time.Time, error) {
	if outbound == "" {
		return time.Time{}, time.Time{}, &MissingDatesError{Field: "outbound date"}
	}
	if ret == "" {
		return time.Time{}, time.Time{}, &MissingDatesError{Field: "return date"}
	}
	out, err := time.Parse(DateLayout, outbound)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, outbound)
	}
	back, err := time.Parse(DateLayout, ret)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, ret)
	}
	if back.Before(out) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return out, back, nil
}

// Nights is the number of nights between two dates, rounded up and never
// negative.
func Nights(outbound, ret time.Time) int {
	d := ret.Sub(outbound)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// HotelNights is Nights with a floor of one, used to split total hotel rates.
func HotelNights(checkIn, checkOut time.Time) int {
	if n := Nights(checkIn, checkOut); n > 0 {
		return n
	}
	return 1
}
