package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHotelCandidates_NightlyPricePriority(t *testing.T) {
	payload := `{"properties": [
	  {"name": "Nile View", "rate_per_night": {"lowest": "$95", "extracted_lowest": 92}, "price": 300,
	   "overall_rating": 4.4, "reviews": 812, "link": "https://example.com/nile"},
	  {"name": "Garden Inn", "price": "$70"},
	  {"title": "Pyramids Lodge", "rate_per_room": {"before_taxes_fees": "$55"}, "rating": 3.9, "reviews_count": 40},
	  {"name": "Zamalek Suites", "rates": [{"rate_per_night": {"extracted_before_taxes_fees": 130}}]},
	  {"name": "Tahrir House", "prices": [{"rate_per_night": {"lowest": "$1,150"}}], "neighborhood": "Downtown"}
	]}`

	got, err := ExtractHotelCandidates([]byte(payload), 3)

	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "Nile View", got[0].Name)
	assert.Equal(t, 92.0, got[0].PricePerNight)
	require.NotNil(t, got[0].Rating)
	assert.Equal(t, 4.4, *got[0].Rating)
	require.NotNil(t, got[0].Reviews)
	assert.Equal(t, 812, *got[0].Reviews)
	assert.Equal(t, "https://example.com/nile", got[0].Link)

	assert.Equal(t, 70.0, got[1].PricePerNight)
	assert.Nil(t, got[1].Rating)
	assert.Nil(t, got[1].Reviews)

	assert.Equal(t, "Pyramids Lodge", got[2].Name)
	assert.Equal(t, 55.0, got[2].PricePerNight)
	assert.Equal(t, 40, got[2].ReviewsOrZero())

	assert.Equal(t, 130.0, got[3].PricePerNight)

	assert.Equal(t, 1150.0, got[4].PricePerNight)
	assert.Equal(t, "Downtown", got[4].Location)
}

func TestExtractHotelCandidates_TotalRateSplitByNights(t *testing.T) {
	payload := `{"properties": [
	  {"name": "Long Stay", "total_rate": {"extracted_lowest": 600}},
	  {"name": "Totals Only", "total_price": "$450"},
	  {"name": "Zero Total", "total_rate": {"extracted_lowest": 0}, "total_price": 300}
	]}`

	got, err := ExtractHotelCandidates([]byte(payload), 6)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 100.0, got[0].PricePerNight)
	assert.Equal(t, 75.0, got[1].PricePerNight)
}

func TestExtractHotelCandidates_NightsFloorIsOne(t *testing.T) {
	payload := `{"properties": [{"name": "Day Room", "total_rate": {"extracted_lowest": 80}}]}`

	got, err := ExtractHotelCandidates([]byte(payload), 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 80.0, got[0].PricePerNight)
}

func TestExtractHotelCandidates_DropsImplausible(t *testing.T) {
	payload := `{"properties": [
	  {"name": "Too Cheap", "rate_per_night": {"extracted_lowest": 5}},
	  {"name": "Too Dear", "rate_per_night": {"extracted_lowest": 2000}},
	  {"name": "No Price"},
	  "garbage",
	  {"rate_per_night": {"extracted_lowest": 45}}
	]}`

	got, err := ExtractHotelCandidates([]byte(payload), 2)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hotel", got[0].Name)
	assert.Equal(t, 45.0, got[0].PricePerNight)
}

func TestExtractHotelCandidates_NoProperties(t *testing.T) {
	got, err := ExtractHotelCandidates([]byte(`{"search_metadata": {}}`), 2)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractHotelCandidates_DecodeError(t *testing.T) {
	_, err := ExtractHotelCandidates([]byte(`<html>`), 2)

	assert.Error(t, err)
}

func TestExtractHotelCandidates_DecimalRatesKeepWholePart(t *testing.T) {
	payload := `{"properties": [
	  {"name": "Hostel Bed", "rate_per_night": {"lowest": "$4.50"}},
	  {"name": "Budget Room", "rate_per_night": {"lowest": "$9.50"}},
	  {"name": "Corniche Hotel", "rate_per_night": {"lowest": "$85.50"}}
	]}`

	got, err := ExtractHotelCandidates([]byte(payload), 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Budget Room", got[0].Name)
	assert.Equal(t, 9.50, got[0].PricePerNight)
	assert.Equal(t, "Corniche Hotel", got[1].Name)
	assert.Equal(t, 85.50, got[1].PricePerNight)
}
