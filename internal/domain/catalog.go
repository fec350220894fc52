package domain

import "fmt"

type Treatment struct {
	Value string  `json:"value"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type AccommodationTier struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Details     string  `json:"details"`
}

var treatments = [...]Treatment{
	{Value: "single-implant", Label: "Single Implant", Price: 800},
	{Value: "multiple-implants", Label: "Multiple Implants (2-6)", Price: 800},
	{Value: "all-on-4", Label: "All-on-4", Price: 5500},
	{Value: "all-on-6", Label: "All-on-6", Price: 6500},
	{Value: "full-mouth-upper", Label: "Full Mouth Implants (Upper)", Price: 12000},
	{Value: "full-mouth-lower", Label: "Full Mouth Implants (Lower)", Price: 12000},
	{Value: "full-mouth-rehab", Label: "Full Mouth Rehabilitation", Price: 15000},
}

var accommodationTiers = [...]AccommodationTier{
	{
		Value:       "Budget",
		Label:       "Budget",
		Price:       60,
		Description: "Typically under $70/night",
		Details:     "2–3 star hotels or guesthouses — clean rooms, basic amenities, often outside city center.",
	},
	{
		Value:       "Standard",
		Label:       "Standard",
		Price:       120,
		Description: "$80–150/night on average",
		Details:     "3–4 star hotels — comfortable rooms, good location, breakfast included, modern facilities.",
	},
	{
		Value:       "Luxury",
		Label:       "Luxury",
		Price:       220,
		Description: "$180–350+/night",
		Details:     "5-star or boutique hotels — premium amenities, sea or city views, fine dining, spa & concierge services.",
	},
}

const DefaultAccommodation = "Budget"

// Treatments returns a copy of the fixed treatment catalog.
func Treatments() []Treatment {
	out := make([]Treatment, len(treatments))
	copy(out, treatments[:])
	return out
}

func AccommodationTiers() []AccommodationTier {
	out := make([]AccommodationTier, len(accommodationTiers))
	copy(out, accommodationTiers[:])
	return out
}

func LookupTreatment(value string) (Treatment, error) {
	for _, t := range treatments {
		if t.Value == value {
			return t, nil
		}
	}
	return Treatment{}, fmt.Errorf("%w: %q", ErrUnknownTreatment, value)
}

func LookupAccommodation(value string) (AccommodationTier, error) {
	for _, a := range accommodationTiers {
		if a.Value == value {
			return a, nil
		}
	}
	return AccommodationTier{}, fmt.Errorf("%w: %q", ErrUnknownAccommodation, value)
}
