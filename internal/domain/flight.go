package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type FlightSource string

const (
	FlightSourceBest     FlightSource = "best_flights"
	FlightSourceOther    FlightSource = "other_flights"
	FlightSourceFallback FlightSource = "fallback"
)

// FlightOption is one priced itinerary. Options found by the fallback
// traversal carry only a price: Detail and Raw are empty.
type FlightOption struct {
	Price  float64         `json:"price"`
	Source FlightSource    `json:"source"`
	Detail *FlightDetail   `json:"detail,omitempty"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}

func (o FlightOption) PriceOnly() bool {
	return o.Detail == nil && len(o.Raw) == 0
}

// FlightDetail mirrors the provider's itinerary object for display.
type FlightDetail struct {
	Flights         []FlightSegment  `json:"flights"`
	Layovers        []Layover        `json:"layovers,omitempty"`
	TotalDuration   int              `json:"total_duration"`
	CarbonEmissions *CarbonEmissions `json:"carbon_emissions,omitempty"`
	Type            string           `json:"type,omitempty"`
	AirlineLogo     string           `json:"airline_logo,omitempty"`
	DepartureToken  string           `json:"departure_token,omitempty"`
}

type FlightSegment struct {
	DepartureAirport AirportTime `json:"departure_airport"`
	ArrivalAirport   AirportTime `json:"arrival_airport"`
	Duration         int         `json:"duration"`
	Airplane         string      `json:"airplane,omitempty"`
	Airline          string      `json:"airline"`
	AirlineLogo      string      `json:"airline_logo,omitempty"`
	TravelClass      string      `json:"travel_class,omitempty"`
	FlightNumber     string      `json:"flight_number,omitempty"`
	Legroom          string      `json:"legroom,omitempty"`
	Extensions       []string    `json:"extensions,omitempty"`
}

type AirportTime struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type Layover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight,omitempty"`
}

type CarbonEmissions struct {
	ThisFlight          int `json:"this_flight"`
	TypicalForThisRoute int `json:"typical_for_this_route"`
	DifferencePercent   int `json:"difference_percent"`
}

// Airlines lists the distinct carriers in segment order.
func (d *FlightDetail) Airlines() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range d.Flights {
		if s.Airline == "" {
			continue
		}
		if _, ok := seen[s.Airline]; ok {
			continue
		}
		seen[s.Airline] = struct{}{}
		out = append(out, s.Airline)
	}
	return out
}

// Route renders "JFK → IST → CAI".
func (d *FlightDetail) Route() string {
	if len(d.Flights) == 0 {
		return ""
	}
	parts := []string{airportLabel(d.Flights[0].DepartureAirport)}
	for _, s := range d.Flights {
		parts = append(parts, airportLabel(s.ArrivalAirport))
	}
	return strings.Join(parts, " → ")
}

func (d *FlightDetail) DurationText() string {
	if d.TotalDuration <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dh %dm", d.TotalDuration/60, d.TotalDuration%60)
}

func airportLabel(a AirportTime) string {
	if a.ID != "" {
		return a.ID
	}
	return a.Name
}

// FlightQuote is the outcome of one flight pricing attempt. A nil Selected
// with a Warning is a degraded quote priced at zero.
type FlightQuote struct {
	Selected *FlightOption  `json:"selected"`
	Options  []FlightOption `json:"options"`
	Warning  string         `json:"warning,omitempty"`
}

func (q *FlightQuote) Price() float64 {
	if q == nil || q.Selected == nil {
		return 0
	}
	return q.Selected.Price
}
