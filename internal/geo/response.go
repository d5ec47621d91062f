package geo

import "github.com/evyataryagoni/iptracker/internal/models"

// lookupResponse mirrors the provider's success body.
// Every field is optional; see record for how absent fields are handled.
type lookupResponse struct {
	IP       *string        `json:"ip"`
	ISP      *string        `json:"isp"`
	Location *locationBlock `json:"location"`
}

type locationBlock struct {
	Country    *string  `json:"country"`
	City       *string  `json:"city"`
	Region     *string  `json:"region"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	PostalCode *string  `json:"postalCode"`
	Timezone   *string  `json:"timezone"`
}

// errorResponse mirrors the provider's error body
type errorResponse struct {
	Code     *int    `json:"code"`
	Messages *string `json:"messages"`
}

// record flattens the body into a LocationRecord.
// Missing text fields become "". A missing or out of range coordinate
// fails the lookup so the displayed pair is never partial.
func (r lookupResponse) record() (models.LocationRecord, error) {
	if r.Location == nil || r.Location.Lat == nil || r.Location.Lng == nil {
		return models.LocationRecord{}, ErrIncomplete
	}

	coords := models.Coordinates{Lat: *r.Location.Lat, Lng: *r.Location.Lng}
	if !coords.Valid() {
		return models.LocationRecord{}, ErrIncomplete
	}

	return models.LocationRecord{
		IP:          deref(r.IP),
		ISP:         deref(r.ISP),
		City:        deref(r.Location.City),
		Region:      deref(r.Location.Region),
		Coordinates: coords,
		PostalCode:  deref(r.Location.PostalCode),
		Timezone:    deref(r.Location.Timezone),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
