package hotels

import (
	"context"
	"log"
	"net/url"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/extract"
	"github.com/Domenick1991/dentaltrip/internal/serp"
)

// WarningUnavailable is shown when no hotel could be priced and the flat
// accommodation tier rate applies.
const WarningUnavailable = "Unable to fetch hotels. Using accommodation level prices."

type HotelUseCase interface {
	PriceHotels(ctx context.Context, checkIn, checkOut string) (*domain.HotelQuote, error)
}

type Searcher interface {
	Search(ctx context.Context, query url.Values) ([]byte, error)
}

type HotelService struct {
	searcher Searcher
	cfg      config.EstimatorConfig
}

func NewHotelService(searcher Searcher, cfg config.EstimatorConfig) *HotelService {
	return &HotelService{searcher: searcher, cfg: cfg}
}

// PriceHotels searches the fixed destination city for the stay. Missing or
// invalid dates are returned as errors; everything after the request is
// folded into a quote, degraded when nothing usable came back.
func (s *HotelService) PriceHotels(ctx context.Context, checkIn, checkOut string) (*domain.HotelQuote, error) {
	in, out, err := domain.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	nights := domain.HotelNights(in, out)

	payload, err := s.searcher.Search(ctx, serp.HotelsQuery(s.cfg, checkIn, checkOut))
	if err != nil {
		log.Printf("[hotels] %s %s/%s: upstream failed: %v", s.cfg.DestinationCity, checkIn, checkOut, err)
		return degraded(nights), nil
	}

	candidates, err := extract.ExtractHotelCandidates(payload, nights)
	if err != nil {
		log.Printf("[hotels] %s %s/%s: %v", s.cfg.DestinationCity, checkIn, checkOut, err)
		return degraded(nights), nil
	}
	if len(candidates) == 0 {
		log.Printf("[hotels] %s %s/%s: %v", s.cfg.DestinationCity, checkIn, checkOut, domain.ErrNoPlausiblePrice)
		return degraded(nights), nil
	}

	picks := extract.PickHotels(candidates)
	log.Printf("[hotels] %s %s/%s: %d candidates, cheapest %.2f/night", s.cfg.DestinationCity, checkIn, checkOut, len(candidates), picks.Cheapest.PricePerNight)
	return &domain.HotelQuote{Candidates: candidates, Picks: picks, Nights: nights}, nil
}

func degraded(nights int) *domain.HotelQuote {
	return &domain.HotelQuote{
		Candidates: []domain.HotelCandidate{},
		Nights:     nights,
		Warning:    WarningUnavailable,
	}
}

var _ HotelUseCase = (*HotelService)(nil)
