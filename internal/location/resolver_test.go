package location

import (
	"errors"
	"testing"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EmbeddedCode(t *testing.T) {
	testCases := []struct {
		input string
		want  domain.AirportCode
	}{
		{"JFK", "JFK"},
		{"lhr", "LHR"},
		{"  cdg  ", "CDG"},
		{"Flying from JFK on Monday", "JFK"},
		{"(JFK) terminal 4", "JFK"},
		// the first standalone token wins, even an ordinary word
		{"from new york JFK", "NEW"},
		{"ist/cai round trip", "IST"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Resolve(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_EveryCityInTable(t *testing.T) {
	for _, c := range Cities() {
		t.Run(c.Name, func(t *testing.T) {
			got, err := Resolve(c.Name)
			require.NoError(t, err)
			assert.Equal(t, c.Code, got)
		})
	}
}

func TestResolve_CityNamesAreCaseInsensitive(t *testing.T) {
	got, err := Resolve("new york")
	require.NoError(t, err)
	assert.Equal(t, domain.AirportCode("JFK"), got)

	got, err = Resolve("  Los   Angeles ")
	require.NoError(t, err)
	assert.Equal(t, domain.AirportCode("LAX"), got)

	got, err = Resolve("Abu Dhabi")
	require.NoError(t, err)
	assert.Equal(t, domain.AirportCode("AUH"), got)
}

func TestResolve_Arabic(t *testing.T) {
	got, err := Resolve("لندن")
	require.NoError(t, err)
	assert.Equal(t, domain.AirportCode("LHR"), got)

	got, err = Resolve(" إسطنبول ")
	require.NoError(t, err)
	assert.Equal(t, domain.AirportCode("IST"), got)
}

func TestResolve_Unresolved(t *testing.T) {
	for _, input := range []string{"Springfield", "Kalamazoo Michigan", "JFK123", "ab"} {
		t.Run(input, func(t *testing.T) {
			_, err := Resolve(input)
			var unresolved *domain.UnresolvedLocationError
			require.True(t, errors.As(err, &unresolved))
			assert.Equal(t, input, unresolved.Input)
			assert.Contains(t, err.Error(), "3-letter IATA code")
		})
	}
}

func TestResolve_Empty(t *testing.T) {
	_, err := Resolve("   ")
	var unresolved *domain.UnresolvedLocationError
	require.True(t, errors.As(err, &unresolved))
	assert.Contains(t, err.Error(), "Please enter your departure")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1234.50", Normalize("١٬٢٣٤٫٥٠"))
	assert.Equal(t, "2025", Normalize("٢٠٢٥"))
	assert.Equal(t, "1995", Normalize("۱۹۹۵"))
	assert.Equal(t, "a, b", Normalize("a، b"))
}
