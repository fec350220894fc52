package flights

import (
	"context"
	"log"
	"net/url"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/extract"
	"github.com/Domenick1991/dentaltrip/internal/serp"
)

// WarningUnavailable is shown whenever the flight half could not be priced.
const WarningUnavailable = "Unable to fetch flight price. We used 0 for flight cost."

type FlightUseCase interface {
	PriceFlights(ctx context.Context, departure, arrival, outboundDate, returnDate string) (*domain.FlightQuote, error)
}

// Searcher is the upstream travel-search call.
type Searcher interface {
	Search(ctx context.Context, query url.Values) ([]byte, error)
}

type FlightService struct {
	searcher Searcher
	cfg      config.EstimatorConfig
}

func NewFlightService(searcher Searcher, cfg config.EstimatorConfig) *FlightService {
	return &FlightService{searcher: searcher, cfg: cfg}
}

// PriceFlights validates the request, then issues exactly one upstream
// search. Only validation errors are returned; upstream and extraction
// failures come back as a degraded quote carrying a warning.
func (s *FlightService) PriceFlights(ctx context.Context, departure, arrival, outboundDate, returnDate string) (*domain.FlightQuote, error) {
	dep, err := domain.ParseAirportCode("departure", departure)
	if err != nil {
		return nil, err
	}
	arr, err := domain.ParseAirportCode("arrival", arrival)
	if err != nil {
		return nil, err
	}
	if _, _, err := domain.ParseDateRange(outboundDate, returnDate); err != nil {
		return nil, err
	}

	payload, err := s.searcher.Search(ctx, serp.FlightsQuery(s.cfg, dep, arr, outboundDate, returnDate))
	if err != nil {
		log.Printf("[flights] %s->%s %s/%s: upstream failed: %v", dep, arr, outboundDate, returnDate, err)
		return degraded(), nil
	}

	prices := extract.ExtractFlightPrices(payload)
	if prices.Empty() {
		log.Printf("[flights] %s->%s %s/%s: %v", dep, arr, outboundDate, returnDate, domain.ErrNoPlausiblePrice)
		return degraded(), nil
	}

	if !prices.Structured {
		log.Printf("[flights] %s->%s: structured arrays empty, fallback price %.2f at %s", dep, arr, prices.Best.Amount, prices.Best.Path)
		return &domain.FlightQuote{
			Selected: &domain.FlightOption{Price: prices.Best.Amount, Source: domain.FlightSourceFallback},
			Options:  []domain.FlightOption{},
		}, nil
	}

	options := prices.Options
	log.Printf("[flights] %s->%s: %d options, cheapest %.2f", dep, arr, len(options), options[0].Price)
	selected := options[0]
	return &domain.FlightQuote{Selected: &selected, Options: options}, nil
}

func degraded() *domain.FlightQuote {
	return &domain.FlightQuote{Options: []domain.FlightOption{}, Warning: WarningUnavailable}
}

var _ FlightUseCase = (*FlightService)(nil)
