package serp

import (
	"net/url"
	"strconv"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/domain"
)

const (
	engineFlights = "google_flights"
	engineHotels  = "google_hotels"
)

// FlightsQuery builds a round-trip flight search.
func FlightsQuery(cfg config.EstimatorConfig, dep, arr domain.AirportCode, outbound, ret string) url.Values {
	q := url.Values{}
	q.Set("engine", engineFlights)
	q.Set("departure_id", dep.String())
	q.Set("arrival_id", arr.String())
	q.Set("outbound_date", outbound)
	q.Set("return_date", ret)
	q.Set("currency", cfg.Currency)
	q.Set("hl", cfg.Language)
	return q
}

// HotelsQuery builds a property search in the destination city.
func HotelsQuery(cfg config.EstimatorConfig, checkIn, checkOut string) url.Values {
	q := url.Values{}
	q.Set("engine", engineHotels)
	q.Set("q", cfg.DestinationCity)
	q.Set("check_in_date", checkIn)
	q.Set("check_out_date", checkOut)
	q.Set("adults", strconv.Itoa(cfg.HotelAdults))
	q.Set("currency", cfg.Currency)
	q.Set("gl", cfg.Country)
	q.Set("hl", cfg.Language)
	return q
}
