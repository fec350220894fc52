package hotels

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query url.Values) ([]byte, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var testCfg = config.EstimatorConfig{
	DestinationCity: "Cairo",
	HotelAdults:     2,
	Currency:        "USD",
	Country:         "us",
	Language:        "en",
}

func TestHotelService_PriceHotels(t *testing.T) {
	searcher := &MockSearcher{}
	service := NewHotelService(searcher, testCfg)
	ctx := context.Background()

	payload := []byte(`{"properties": [
	  {"name": "Nile Budget", "rate_per_night": {"extracted_lowest": 45}, "overall_rating": 3.6, "reviews": 120},
	  {"name": "Four Seasons", "total_rate": {"extracted_lowest": 2100}, "overall_rating": 4.8, "reviews": 3000},
	  {"name": "Tiny Hostel", "rate_per_night": {"extracted_lowest": 3}}
	]}`)
	searcher.On("Search", ctx, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("engine") == "google_hotels" &&
			q.Get("q") == "Cairo" &&
			q.Get("check_in_date") == "2025-03-01" &&
			q.Get("check_out_date") == "2025-03-08" &&
			q.Get("adults") == "2"
	})).Return(payload, nil).Once()

	quote, err := service.PriceHotels(ctx, "2025-03-01", "2025-03-08")

	require.NoError(t, err)
	assert.Equal(t, 7, quote.Nights)
	require.Len(t, quote.Candidates, 2)
	assert.Equal(t, 300.0, quote.Candidates[1].PricePerNight)
	require.True(t, quote.Picks.Available())
	assert.Equal(t, "Nile Budget", quote.Picks.Cheapest.Name)
	assert.Equal(t, "Four Seasons", quote.Picks.TopRated.Name)
	assert.Equal(t, "Nile Budget", quote.Picks.BestValue.Name)
	assert.Empty(t, quote.Warning)

	searcher.AssertExpectations(t)
}

func TestHotelService_PriceHotels_Degraded(t *testing.T) {
	testCases := []struct {
		name    string
		payload []byte
		err     error
	}{
		{name: "upstream error", err: &domain.UpstreamRequestError{StatusCode: 503, Body: "unavailable"}},
		{name: "not json", payload: []byte(`<html>busy</html>`)},
		{name: "no plausible listing", payload: []byte(`{"properties": [{"name": "X", "rate_per_night": {"extracted_lowest": 4000}}]}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			searcher := &MockSearcher{}
			service := NewHotelService(searcher, testCfg)
			ctx := context.Background()

			if tc.err != nil {
				searcher.On("Search", ctx, mock.Anything).Return(nil, tc.err).Once()
			} else {
				searcher.On("Search", ctx, mock.Anything).Return(tc.payload, nil).Once()
			}

			quote, err := service.PriceHotels(ctx, "2025-03-01", "2025-03-04")

			require.NoError(t, err)
			assert.Equal(t, 3, quote.Nights)
			assert.Empty(t, quote.Candidates)
			assert.False(t, quote.Picks.Available())
			assert.Equal(t, WarningUnavailable, quote.Warning)
		})
	}
}

func TestHotelService_PriceHotels_SameDayStayCountsOneNight(t *testing.T) {
	searcher := &MockSearcher{}
	service := NewHotelService(searcher, testCfg)
	ctx := context.Background()

	searcher.On("Search", ctx, mock.Anything).Return([]byte(`{"properties": [{"name": "A", "total_rate": {"extracted_lowest": 90}}]}`), nil).Once()

	quote, err := service.PriceHotels(ctx, "2025-03-01", "2025-03-01")

	require.NoError(t, err)
	assert.Equal(t, 1, quote.Nights)
	require.Len(t, quote.Candidates, 1)
	assert.Equal(t, 90.0, quote.Candidates[0].PricePerNight)
}

func TestHotelService_PriceHotels_MissingDates(t *testing.T) {
	searcher := &MockSearcher{}
	service := NewHotelService(searcher, testCfg)

	_, err := service.PriceHotels(context.Background(), "2025-03-01", "")

	var missing *domain.MissingDatesError
	assert.True(t, errors.As(err, &missing))
	searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}
