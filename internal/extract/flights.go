package extract

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Domenick1991/dentaltrip/internal/domain"
)

// FlightPrices is the extractor output. Options is parallel to Ranked and
// only filled on the structured path.
type FlightPrices struct {
	Best       domain.PriceCandidate
	Ranked     []domain.PriceCandidate
	Options    []domain.FlightOption
	Structured bool
}

// Empty means neither path produced a plausible price; Best.Amount is 0.
func (p FlightPrices) Empty() bool {
	return p.Best.Amount == 0
}

type flightsPayload struct {
	BestFlights  []json.RawMessage `json:"best_flights"`
	OtherFlights []json.RawMessage `json:"other_flights"`
}

// ExtractFlightPrices prefers the best_flights/other_flights arrays and
// falls back to a full-tree walk only when they yield nothing.
func ExtractFlightPrices(payload []byte) FlightPrices {
	var structured flightsPayload
	if err := json.Unmarshal(payload, &structured); err == nil {
		found := collectFlights(nil, structured.BestFlights, domain.FlightSourceBest)
		found = collectFlights(found, structured.OtherFlights, domain.FlightSourceOther)
		if len(found) > 0 {
			return rankFlights(found)
		}
	}

	hits, err := WalkPrices(payload, domain.FlightPriceRange)
	if err != nil || len(hits) == 0 {
		return FlightPrices{Best: domain.PriceCandidate{Source: string(domain.FlightSourceFallback)}}
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h.Amount < best.Amount {
			best = h
		}
	}
	return FlightPrices{Best: best, Ranked: []domain.PriceCandidate{}}
}

type structuredHit struct {
	option domain.FlightOption
	path   string
}

func collectFlights(dst []structuredHit, entries []json.RawMessage, source domain.FlightSource) []structuredHit {
	for i, raw := range entries {
		price, ok := numericPrice(raw)
		if !ok || !domain.FlightPriceRange.Contains(price) {
			continue
		}
		opt := domain.FlightOption{Price: price, Source: source, Raw: raw}
		var detail domain.FlightDetail
		if err := json.Unmarshal(raw, &detail); err == nil {
			opt.Detail = &detail
		}
		dst = append(dst, structuredHit{option: opt, path: fmt.Sprintf("$.%s[%d].price", source, i)})
	}
	return dst
}

// numericPrice accepts only a JSON number; strings are left to the fallback.
func numericPrice(raw json.RawMessage) (float64, bool) {
	var entry struct {
		Price any `json:"price"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return 0, false
	}
	p, ok := entry.Price.(float64)
	return p, ok
}

func rankFlights(hits []structuredHit) FlightPrices {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].option.Price < hits[j].option.Price
	})
	ranked := make([]domain.PriceCandidate, len(hits))
	options := make([]domain.FlightOption, len(hits))
	for i, h := range hits {
		options[i] = h.option
		ranked[i] = domain.PriceCandidate{Amount: h.option.Price, Source: string(h.option.Source), Path: h.path}
	}
	return FlightPrices{
		Best:       ranked[0],
		Ranked:     ranked,
		Options:    options,
		Structured: true,
	}
}
