package domain

// PriceRange is the plausibility window a candidate must fall into.
type PriceRange struct {
	Min       float64
	Max       float64
	Exclusive bool
}

var (
	// FlightPriceRange is inclusive: 20 and 20000 USD are accepted.
	FlightPriceRange = PriceRange{Min: 20, Max: 20000}
	// HotelNightlyRange is exclusive on both ends.
	HotelNightlyRange = PriceRange{Min: 5, Max: 2000, Exclusive: true}
)

func (r PriceRange) Contains(v float64) bool {
	if r.Exclusive {
		return v > r.Min && v < r.Max
	}
	return v >= r.Min && v <= r.Max
}

// PriceCandidate is a numeric price plus the place it was found.
type PriceCandidate struct {
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
	Path   string  `json:"path,omitempty"`
}
