package cost

import (
	"math"

	"github.com/Domenick1991/dentaltrip/internal/domain"
)

// Aggregate builds a fresh breakdown from its inputs. The nightly rate is
// rounded to whole dollars before multiplying, negative nights count as zero
// and a missing flight price is 0.
func Aggregate(treatmentPrice float64, nights int, nightlyRate, flightPrice float64) domain.CostBreakdown {
	if nights < 0 {
		nights = 0
	}
	rate := math.Round(nightlyRate)
	accommodation := rate * float64(nights)

	return domain.CostBreakdown{
		Treatment:     treatmentPrice,
		Accommodation: accommodation,
		Flight:        flightPrice,
		Nights:        nights,
		NightlyRate:   rate,
		Total:         treatmentPrice + accommodation + flightPrice,
	}
}
