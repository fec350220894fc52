package extract

import "github.com/Domenick1991/dentaltrip/internal/domain"

// minReviewsForTopRated restricts the top-rated pick to listings with enough
// reviews, when any such listing exists.
const minReviewsForTopRated = 20

// PickHotels computes cheapest, top-rated and best-value over candidates.
// Ties keep the earlier candidate. An empty set yields all-nil picks.
func PickHotels(candidates []domain.HotelCandidate) domain.HotelPicks {
	if len(candidates) == 0 {
		return domain.HotelPicks{}
	}

	cheapest := 0
	bestValue := 0
	for i, c := range candidates {
		if c.PricePerNight < candidates[cheapest].PricePerNight {
			cheapest = i
		}
		if c.BestValueScore() > candidates[bestValue].BestValueScore() {
			bestValue = i
		}
	}

	pool := make([]int, 0, len(candidates))
	for i, c := range candidates {
		if c.ReviewsOrZero() >= minReviewsForTopRated {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		for i := range candidates {
			pool = append(pool, i)
		}
	}
	topRated := pool[0]
	for _, i := range pool[1:] {
		if candidates[i].RatingOrZero() > candidates[topRated].RatingOrZero() {
			topRated = i
		}
	}

	return domain.HotelPicks{
		Cheapest:  pick(candidates[cheapest]),
		TopRated:  pick(candidates[topRated]),
		BestValue: pick(candidates[bestValue]),
	}
}

func pick(c domain.HotelCandidate) *domain.HotelCandidate {
	return &c
}
