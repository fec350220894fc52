package extract

import (
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/dentaltrip/internal/domain"
)

type propertiesPayload struct {
	Properties []json.RawMessage `json:"properties"`
}

// propertyListing keeps every field loosely typed: providers send the same
// key as a number, a display string or a nested object.
type propertyListing struct {
	Name               any `json:"name"`
	Title              any `json:"title"`
	RatePerNight       any `json:"rate_per_night"`
	Price              any `json:"price"`
	RatePerRoom        any `json:"rate_per_room"`
	Rates              any `json:"rates"`
	Prices             any `json:"prices"`
	TotalRate          any `json:"total_rate"`
	TotalPrice         any `json:"total_price"`
	OverallRating      any `json:"overall_rating"`
	Rating             any `json:"rating"`
	Reviews            any `json:"reviews"`
	ReviewsCount       any `json:"reviews_count"`
	Location           any `json:"location"`
	Neighborhood       any `json:"neighborhood"`
	Vicinity           any `json:"vicinity"`
	Link               any `json:"link"`
	SerpapiPropertyURL any `json:"serpapi_property_url"`
	GoogleMapsURL      any `json:"google_maps_url"`
}

// ExtractHotelCandidates reads the property list and derives a nightly price
// for each listing, dropping anything outside the nightly plausibility
// range. nights is the stay length used to split a total rate.
func ExtractHotelCandidates(payload []byte, nights int) ([]domain.HotelCandidate, error) {
	if nights < 1 {
		nights = 1
	}
	var body propertiesPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("decode hotel payload: %w", err)
	}

	candidates := make([]domain.HotelCandidate, 0, len(body.Properties))
	for _, raw := range body.Properties {
		var l propertyListing
		if err := json.Unmarshal(raw, &l); err != nil {
			continue
		}
		nightly, ok := l.nightlyPrice(nights)
		if !ok || !domain.HotelNightlyRange.Contains(nightly) {
			continue
		}
		candidates = append(candidates, domain.HotelCandidate{
			Name:          firstString("Hotel", l.Name, l.Title),
			PricePerNight: nightly,
			Rating:        firstNumber(l.OverallRating, l.Rating),
			Reviews:       firstInt(l.Reviews, l.ReviewsCount),
			Location:      firstString("", l.Location, l.Neighborhood, l.Vicinity),
			Link:          firstString("", l.Link, l.SerpapiPropertyURL, l.GoogleMapsURL),
		})
	}
	return candidates, nil
}

func (l propertyListing) nightlyPrice(nights int) (float64, bool) {
	for _, v := range []any{l.RatePerNight, l.Price, l.RatePerRoom, firstRate(l.Rates), firstRate(l.Prices)} {
		if p, ok := priceValue(v); ok {
			return p, true
		}
	}

	total := l.TotalRate
	if total == nil {
		total = l.TotalPrice
	}
	if t, ok := priceValue(total); ok && t != 0 {
		return t / float64(nights), true
	}
	return 0, false
}

func priceValue(v any) (float64, bool) {
	switch p := v.(type) {
	case float64:
		return p, true
	case string:
		return ParseMoney(p)
	case map[string]any:
		if n, ok := p["extracted_lowest"].(float64); ok {
			return n, true
		}
		if n, ok := p["extracted_before_taxes_fees"].(float64); ok {
			return n, true
		}
		if s, ok := p["lowest"].(string); ok {
			return priceValue(s)
		}
		if s, ok := p["before_taxes_fees"].(string); ok {
			return priceValue(s)
		}
	}
	return 0, false
}

// firstRate returns rates[0].rate_per_night when present.
func firstRate(v any) any {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	entry, ok := list[0].(map[string]any)
	if !ok {
		return nil
	}
	return entry["rate_per_night"]
}

func firstString(fallback string, values ...any) string {
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func firstNumber(values ...any) *float64 {
	for _, v := range values {
		if n, ok := v.(float64); ok {
			return &n
		}
	}
	return nil
}

func firstInt(values ...any) *int {
	for _, v := range values {
		if n, ok := v.(float64); ok {
			i := int(n)
			return &i
		}
	}
	return nil
}
