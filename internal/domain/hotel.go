package domain

import "fmt"

type HotelCandidate struct {
	Name          string   `json:"name"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
	Location      string   `json:"location,omitempty"`
	Link          string   `json:"link,omitempty"`
}

func (h HotelCandidate) RatingOrZero() float64 {
	if h.Rating == nil {
		return 0
	}
	return *h.Rating
}

func (h HotelCandidate) ReviewsOrZero() int {
	if h.Reviews == nil {
		return 0
	}
	return *h.Reviews
}

// BestValueScore is rating² / price per night.
func (h HotelCandidate) BestValueScore() float64 {
	p := h.PricePerNight
	if p == 0 {
		p = 1
	}
	r := h.RatingOrZero()
	return r * r / p
}

type HotelPickKind string

const (
	PickCheapest  HotelPickKind = "cheapest"
	PickTopRated  HotelPickKind = "top_rated"
	PickBestValue HotelPickKind = "best_value"
)

// HotelPicks holds the three labelled picks. All nil means unavailable,
// which is different from a zero-cost hotel.
type HotelPicks struct {
	Cheapest  *HotelCandidate `json:"cheapest"`
	TopRated  *HotelCandidate `json:"top_rated"`
	BestValue *HotelCandidate `json:"best_value"`
}

func (p HotelPicks) Available() bool {
	return p.Cheapest != nil
}

func (p HotelPicks) Get(kind HotelPickKind) (*HotelCandidate, error) {
	var c *HotelCandidate
	switch kind {
	case PickCheapest:
		c = p.Cheapest
	case PickTopRated:
		c = p.TopRated
	case PickBestValue:
		c = p.BestValue
	default:
		return nil, fmt.Errorf("%w: hotel pick %q", ErrOptionNotFound, kind)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: hotel pick %q unavailable", ErrOptionNotFound, kind)
	}
	return c, nil
}

type HotelQuote struct {
	Candidates []HotelCandidate `json:"candidates"`
	Picks      HotelPicks       `json:"picks"`
	Nights     int              `json:"nights"`
	Warning    string           `json:"warning,omitempty"`
}
