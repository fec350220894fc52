package location

import (
	"regexp"
	"strings"

	"github.com/Domenick1991/dentaltrip/internal/domain"
)

var codeToken = regexp.MustCompile(`\b[A-Z]{3}\b`)

var digitReplacer = strings.NewReplacer(
	// Arabic-Indic digits
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	// Extended Arabic-Indic (Persian) digits
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	// thousands separator, decimal separator, comma
	"٬", "",
	"٫", ".",
	"،", ",",
)

// Normalize maps non-ASCII digits and Arabic punctuation to ASCII.
func Normalize(input string) string {
	return digitReplacer.Replace(input)
}

// Resolve turns free-text departure input into an airport code.
//
// An exact city-table match wins, so "Los Angeles" is LAX and not the
// embedded "LOS" token. This is the one exception to the token rule: city
// names that contain a 3-letter word (New York, Los Angeles, Abu Dhabi)
// resolve through the table. Otherwise the first standalone 3-letter token
// is used, which lets a pasted itinerary string resolve. There is no fuzzy
// matching.
func Resolve(raw string) (domain.AirportCode, error) {
	cleaned := strings.TrimSpace(Normalize(raw))
	if cleaned == "" {
		return "", &domain.UnresolvedLocationError{}
	}

	upper := strings.Join(strings.Fields(strings.ToUpper(cleaned)), " ")
	if code, ok := lookupCity(upper); ok {
		return code, nil
	}

	if token := codeToken.FindString(upper); token != "" {
		return domain.AirportCode(token), nil
	}

	return "", &domain.UnresolvedLocationError{Input: raw}
}
