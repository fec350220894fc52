package extract

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredPayload = `{
  "search_metadata": {"id": "abc", "total_time_taken": 1.2},
  "best_flights": [
    {"price": 450, "total_duration": 720, "departure_token": "t450",
     "flights": [{"airline": "EgyptAir", "flight_number": "MS 986",
                  "departure_airport": {"id": "JFK", "time": "2025-03-01 13:00"},
                  "arrival_airport": {"id": "CAI", "time": "2025-03-02 06:00"}}]},
    {"price": 600, "departure_token": "t600", "flights": []}
  ],
  "other_flights": [
    {"price": 300, "departure_token": "t300",
     "flights": [{"airline": "Turkish Airlines", "departure_airport": {"id": "JFK"}, "arrival_airport": {"id": "IST"}},
                 {"airline": "Turkish Airlines", "departure_airport": {"id": "IST"}, "arrival_airport": {"id": "CAI"}}],
     "layovers": [{"id": "IST", "name": "Istanbul Airport", "duration": 95}]}
  ],
  "price_insights": {"lowest_price": 25}
}`

func TestExtractFlightPrices_StructuredRanking(t *testing.T) {
	got := ExtractFlightPrices([]byte(structuredPayload))

	require.True(t, got.Structured)
	require.Len(t, got.Ranked, 3)
	require.Len(t, got.Options, 3)

	prices := []float64{got.Ranked[0].Amount, got.Ranked[1].Amount, got.Ranked[2].Amount}
	assert.Equal(t, []float64{300, 450, 600}, prices)
	assert.Equal(t, 300.0, got.Best.Amount)
	assert.Equal(t, "other_flights", got.Best.Source)
	assert.Equal(t, "$.other_flights[0].price", got.Best.Path)

	// the price_insights value of 25 must not leak in: structured path wins
	assert.False(t, got.Empty())

	cheapest := got.Options[0]
	require.NotNil(t, cheapest.Detail)
	assert.Equal(t, "t300", cheapest.Detail.DepartureToken)
	assert.Equal(t, "JFK → IST → CAI", cheapest.Detail.Route())
	assert.Equal(t, []string{"Turkish Airlines"}, cheapest.Detail.Airlines())
	assert.NotEmpty(t, cheapest.Raw)
	assert.False(t, cheapest.PriceOnly())
}

func TestExtractFlightPrices_StructuredSkipsImplausible(t *testing.T) {
	payload := `{"best_flights": [{"price": 5}, {"price": "350"}, {"price": 25000}, {"price": 20}],
	             "other_flights": [{"price": 20000}, {"no_price": true}, 42]}`

	got := ExtractFlightPrices([]byte(payload))

	require.True(t, got.Structured)
	require.Len(t, got.Ranked, 2)
	assert.Equal(t, 20.0, got.Ranked[0].Amount)
	assert.Equal(t, 20000.0, got.Ranked[1].Amount)
}

func TestExtractFlightPrices_KeepsRawWhenDetailDrifts(t *testing.T) {
	payload := `{"best_flights": [{"price": 410, "total_duration": "12h", "flights": "n/a"}]}`

	got := ExtractFlightPrices([]byte(payload))

	require.Len(t, got.Options, 1)
	assert.Nil(t, got.Options[0].Detail)
	assert.JSONEq(t, `{"price": 410, "total_duration": "12h", "flights": "n/a"}`, string(got.Options[0].Raw))
	assert.False(t, got.Options[0].PriceOnly())
}

func TestExtractFlightPrices_FallbackWalk(t *testing.T) {
	payload := `{
	  "results": {
	    "flight_number": 1234,
	    "duration": 540,
	    "offers": [
	      {"totalPrice": "$1,250.00"},
	      {"price": {"amount": 980, "display": "USD 1,020"}},
	      {"Price": 7}
	    ]
	  }
	}`

	got := ExtractFlightPrices([]byte(payload))

	assert.False(t, got.Structured)
	assert.Empty(t, got.Ranked)
	assert.Empty(t, got.Options)
	assert.Equal(t, 980.0, got.Best.Amount)
	assert.Equal(t, "fallback", got.Best.Source)
	assert.Equal(t, "$.results.offers[1].price.amount", got.Best.Path)
}

func TestExtractFlightPrices_FallbackIgnoresCheapDecimals(t *testing.T) {
	payload := `{"insights": {"lowest_price": "$5.40", "typical_price": "$9.99"}}`

	got := ExtractFlightPrices([]byte(payload))

	assert.True(t, got.Empty())
	assert.Equal(t, 0.0, got.Best.Amount)
}

func TestExtractFlightPrices_SchemaDriftFallsBack(t *testing.T) {
	// best_flights as an object cannot be read strictly
	payload := `{"best_flights": {"price": 510}, "other_flights": null}`

	got := ExtractFlightPrices([]byte(payload))

	assert.False(t, got.Structured)
	assert.Equal(t, 510.0, got.Best.Amount)
}

func TestExtractFlightPrices_NothingPlausible(t *testing.T) {
	for _, payload := range []string{`{}`, `{"best_flights": [], "other_flights": []}`, `not json at all`, `{"price": 3}`} {
		t.Run(payload, func(t *testing.T) {
			got := ExtractFlightPrices([]byte(payload))
			assert.True(t, got.Empty())
			assert.Equal(t, 0.0, got.Best.Amount)
			assert.Empty(t, got.Ranked)
		})
	}
}

func TestWalkPrices_DepthIsBounded(t *testing.T) {
	payload := `{"price": 100}`
	for i := 0; i < maxWalkDepth+10; i++ {
		payload = `{"nested": ` + payload + `}`
	}

	hits, err := WalkPrices([]byte(payload), domain.FlightPriceRange)

	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"$1,250", 1250, true},
		{"USD 480.50", 480.50, true},
		{"$ 99", 99, true},
		{"12,345,678", 12345678, true},
		{"7", 7, true},
		{"$9.50", 9.50, true},
		{"$5.99", 5.99, true},
		{"US$ 7.25 per night", 7.25, true},
		{"1.250", 1.25, true},
		{"free", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		got, ok := ParseMoney(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

// Every candidate either path returns must be inside the flight range,
// whatever the payload looks like.
func TestExtractFlightPrices_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		payload, err := json.Marshal(randomNode(rng, 0))
		require.NoError(t, err)

		got := ExtractFlightPrices(payload)
		if !got.Empty() {
			assert.True(t, domain.FlightPriceRange.Contains(got.Best.Amount), "best %v", got.Best.Amount)
		}
		for _, c := range got.Ranked {
			assert.True(t, domain.FlightPriceRange.Contains(c.Amount), "ranked %v", c.Amount)
		}
	}
}

func randomNode(rng *rand.Rand, depth int) any {
	keys := []string{"price", "best_flights", "other_flights", "total_price", "extracted_price", "duration", "id"}
	if depth > 3 {
		return randomLeaf(rng)
	}
	switch rng.Intn(3) {
	case 0:
		m := make(map[string]any)
		for j := 0; j < rng.Intn(4)+1; j++ {
			m[keys[rng.Intn(len(keys))]] = randomNode(rng, depth+1)
		}
		return m
	case 1:
		list := make([]any, rng.Intn(4))
		for j := range list {
			list[j] = randomNode(rng, depth+1)
		}
		return list
	default:
		return randomLeaf(rng)
	}
}

func randomLeaf(rng *rand.Rand) any {
	n := rng.Float64()*60000 - 5000
	switch rng.Intn(3) {
	case 0:
		return n
	case 1:
		return fmt.Sprintf("$%.2f", n)
	default:
		return "n/a"
	}
}
