package location

import "github.com/Domenick1991/dentaltrip/internal/domain"

// City is one entry of the departure hub table. Names are stored in their
// upper-cased lookup form.
type City struct {
	Name string
	Code domain.AirportCode
}

// Changes to this table are data changes; the resolver logic does not need
// to be touched to add a city.
var cityTable = [...]City{
	// Egypt
	{"CAIRO", "CAI"}, {"القاهرة", "CAI"},
	// USA / Canada
	{"NEW YORK", "JFK"}, {"نيويورك", "JFK"},
	{"TORONTO", "YYZ"}, {"تورنتو", "YYZ"},
	{"LOS ANGELES", "LAX"}, {"لوس انجلوس", "LAX"},
	{"CHICAGO", "ORD"}, {"شيكاغو", "ORD"},
	// Europe
	{"LONDON", "LHR"}, {"لندن", "LHR"},
	{"PARIS", "CDG"}, {"باريس", "CDG"},
	{"FRANKFURT", "FRA"}, {"فرانكفورت", "FRA"},
	{"MUNICH", "MUC"}, {"ميونخ", "MUC"},
	{"AMSTERDAM", "AMS"}, {"أمستردام", "AMS"},
	{"ROME", "FCO"}, {"روما", "FCO"},
	{"MILAN", "MXP"}, {"ميلانو", "MXP"},
	{"MADRID", "MAD"}, {"مدريد", "MAD"},
	{"BARCELONA", "BCN"}, {"برشلونة", "BCN"},
	{"ZURICH", "ZRH"}, {"زيورخ", "ZRH"},
	{"GENEVA", "GVA"}, {"جنيف", "GVA"},
	{"VIENNA", "VIE"}, {"فيينا", "VIE"},
	{"ATHENS", "ATH"}, {"أثينا", "ATH"},
	// Middle East
	{"DUBAI", "DXB"}, {"دبي", "DXB"},
	{"ABU DHABI", "AUH"}, {"أبوظبي", "AUH"},
	{"DOHA", "DOH"}, {"الدوحة", "DOH"},
	{"RIYADH", "RUH"}, {"الرياض", "RUH"},
	{"JEDDAH", "JED"}, {"جدة", "JED"},
	{"KUWAIT", "KWI"}, {"الكويت", "KWI"},
	{"MANAMA", "BAH"}, {"المنامة", "BAH"},
	{"MUSCAT", "MCT"}, {"مسقط", "MCT"},
	// Turkey
	{"ISTANBUL", "IST"}, {"اسطنبول", "IST"}, {"إسطنبول", "IST"},
	// Asia
	{"TOKYO", "HND"}, {"طوكيو", "HND"},
	{"BEIJING", "PEK"}, {"بكين", "PEK"},
	{"SHANGHAI", "PVG"}, {"شنغهاي", "PVG"},
	// Australia
	{"SYDNEY", "SYD"}, {"سيدني", "SYD"},
	{"MELBOURNE", "MEL"}, {"ملبورن", "MEL"},
}

var cityIndex = func() map[string]domain.AirportCode {
	m := make(map[string]domain.AirportCode, len(cityTable))
	for _, c := range cityTable {
		m[c.Name] = c.Code
	}
	return m
}()

// Cities returns a copy of the lookup table.
func Cities() []City {
	out := make([]City, len(cityTable))
	copy(out, cityTable[:])
	return out
}

func lookupCity(name string) (domain.AirportCode, bool) {
	code, ok := cityIndex[name]
	return code, ok
}
