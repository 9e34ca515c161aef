package geocode

import (
	"net/url"

	"github.com/gingham-app/gingham/internal/model"
)

// DirectionsURL builds a Google Maps directions link for a resolved place.
// The display name is preferred over the raw address when present.
func DirectionsURL(p model.Place) string {
	q := p.Name
	if q == "" {
		q = p.Address
	}
	return "https://www.google.com/maps/dir/?api=1&destination=" + url.QueryEscape(q)
}
