// Package geocode resolves free-text location queries to coordinates, using
// the Open-Meteo geocoding API with a curated picnic-park catalog as both a
// search enrichment and an offline fallback.
package geocode

import (
	"strings"

	"github.com/gingham-app/gingham/internal/model"
)

// parkCatalog is a curated list of well-known picnic destinations. It backs
// search when the upstream geocoder is unreachable and seeds suggestions for
// short queries.
var parkCatalog = []model.Place{
	{Lat: 40.7829, Lng: -73.9654, Address: "Central Park, New York, NY, USA", Name: "Central Park", PlaceID: "park_central_park"},
	{Lat: 37.7749, Lng: -122.4194, Address: "Golden Gate Park, San Francisco, CA, USA", Name: "Golden Gate Park", PlaceID: "park_golden_gate"},
	{Lat: 34.0522, Lng: -118.2437, Address: "Griffith Park, Los Angeles, CA, USA", Name: "Griffith Park", PlaceID: "park_griffith"},
	{Lat: 41.8781, Lng: -87.6298, Address: "Grant Park, Chicago, IL, USA", Name: "Grant Park", PlaceID: "park_grant"},
	{Lat: 25.7617, Lng: -80.1918, Address: "Bayfront Park, Miami, FL, USA", Name: "Bayfront Park", PlaceID: "park_bayfront"},
	{Lat: 51.5074, Lng: -0.1278, Address: "Hyde Park, London, UK", Name: "Hyde Park", PlaceID: "park_hyde_park"},
	{Lat: 48.8566, Lng: 2.3522, Address: "Luxembourg Gardens, Paris, France", Name: "Luxembourg Gardens", PlaceID: "park_luxembourg"},
	{Lat: 52.5200, Lng: 13.4050, Address: "Tiergarten, Berlin, Germany", Name: "Tiergarten", PlaceID: "park_tiergarten"},
	{Lat: 35.6762, Lng: 139.6503, Address: "Ueno Park, Tokyo, Japan", Name: "Ueno Park", PlaceID: "park_ueno"},
	{Lat: -33.8688, Lng: 151.2093, Address: "Royal Botanic Gardens, Sydney, Australia", Name: "Royal Botanic Gardens", PlaceID: "park_botanic_sydney"},
}

// cityParks maps a city or landmark keyword to its default picnic spot, used
// by Resolve when the upstream geocoder cannot place an address.
var cityParks = []struct {
	key  string
	lat  float64
	lng  float64
	name string
}{
	{"new york", 40.7128, -74.0060, "Central Park"},
	{"los angeles", 34.0522, -118.2437, "Griffith Park"},
	{"chicago", 41.8781, -87.6298, "Grant Park"},
	{"houston", 29.7604, -95.3698, "Hermann Park"},
	{"phoenix", 33.4484, -112.0740, "Papago Park"},
	{"philadelphia", 39.9526, -75.1652, "Fairmount Park"},
	{"san antonio", 29.4241, -98.4936, "Brackenridge Park"},
	{"san diego", 32.7157, -117.1611, "Balboa Park"},
	{"dallas", 32.7767, -96.7970, "White Rock Lake Park"},
	{"san francisco", 37.7749, -122.4194, "Golden Gate Park"},
	{"seattle", 47.6062, -122.3321, "Discovery Park"},
	{"denver", 39.7392, -104.9903, "City Park"},
	{"washington", 38.9072, -77.0369, "National Mall"},
	{"boston", 42.3601, -71.0589, "Boston Common"},
	{"miami", 25.7617, -80.1918, "Bayfront Park"},
	{"atlanta", 33.7490, -84.3880, "Piedmont Park"},
	{"london", 51.5074, -0.1278, "Hyde Park"},
	{"paris", 48.8566, 2.3522, "Luxembourg Gardens"},
	{"berlin", 52.5200, 13.4050, "Tiergarten"},
	{"tokyo", 35.6762, 139.6503, "Ueno Park"},
	{"sydney", -33.8688, 151.2093, "Royal Botanic Gardens"},
	{"toronto", 43.6532, -79.3832, "High Park"},
	{"vancouver", 49.2827, -123.1207, "Stanley Park"},
	{"melbourne", -37.8136, 144.9631, "Royal Botanic Gardens"},
	{"central park", 40.7829, -73.9654, "Central Park"},
	{"golden gate park", 37.7749, -122.4194, "Golden Gate Park"},
	{"hyde park", 51.5074, -0.1278, "Hyde Park"},
	{"stanley park", 49.2827, -123.1207, "Stanley Park"},
	{"balboa park", 32.7157, -117.1611, "Balboa Park"},
}

// searchCatalog filters the curated catalog by query. An empty result means
// the query matched nothing; callers decide whether to fall back to the full
// top-five list.
func searchCatalog(query string) []model.Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return topParks()
	}

	var out []model.Place
	for _, park := range parkCatalog {
		name := strings.ToLower(park.Name)
		if strings.Contains(name, q) ||
			strings.Contains(strings.ToLower(park.Address), q) ||
			strings.Contains(q, firstWord(name)) {
			out = append(out, park)
		}
	}
	if len(out) == 0 {
		return topParks()
	}
	return out
}

func topParks() []model.Place {
	out := make([]model.Place, 5)
	copy(out, parkCatalog[:5])
	return out
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// ResolveOffline geocodes an address against the curated city and landmark
// table without touching the network. Unmatched addresses resolve to the
// geographic center of the contiguous US rather than failing, so a plan can
// always be generated.
func ResolveOffline(address string) model.Place {
	lower := strings.ToLower(address)
	for _, entry := range cityParks {
		if strings.Contains(lower, entry.key) {
			return model.Place{Lat: entry.lat, Lng: entry.lng, Address: address, Name: entry.name}
		}
	}
	return model.Place{Lat: 39.8283, Lng: -98.5795, Address: address}
}
