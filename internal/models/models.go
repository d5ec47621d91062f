package models

import "fmt"

// Coordinates is a latitude/longitude pair.
// It is always replaced as a whole, never one component at a time.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair is a usable WGS84 position
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// LocationRecord is the normalized result of one lookup
// The provider's nested "location" object is flattened into these fields
type LocationRecord struct {
	IP          string      `json:"ip"`
	ISP         string      `json:"isp"`
	City        string      `json:"city"`
	Region      string      `json:"region"`
	Coordinates Coordinates `json:"coordinates"`
	PostalCode  string      `json:"postalCode"`
	Timezone    string      `json:"timezone"`
}

// DefaultRecord returns the record shown at process start and by "load sample data"
func DefaultRecord() LocationRecord {
	return LocationRecord{
		IP:          "8.8.8.8",
		ISP:         "Google LLC",
		City:        "Seattle",
		Region:      "WA",
		Coordinates: Coordinates{Lat: 47.7, Lng: -122.33},
		PostalCode:  "98103",
		Timezone:    "-07:00",
	}
}

// Display holds the four fields rendered in the data panel
type Display struct {
	IPAddress string `json:"ipAddress"`
	Location  string `json:"location"`
	Timezone  string `json:"timezone"`
	ISP       string `json:"isp"`
}

// Display formats the record for the data panel
func (r LocationRecord) Display() Display {
	return Display{
		IPAddress: r.IP,
		Location:  fmt.Sprintf("%s, %s %s", r.City, r.Region, r.PostalCode),
		Timezone:  "UTC " + r.Timezone,
		ISP:       r.ISP,
	}
}

// MapScene describes what the map pane should draw
type MapScene struct {
	Initialized bool         `json:"initialized"`
	Center      *Coordinates `json:"center,omitempty"`
	Zoom        int          `json:"zoom,omitempty"`
	Marker      *Coordinates `json:"marker,omitempty"`
	TileURL     string       `json:"tileUrl"`
	MaxZoom     int          `json:"maxZoom"`
	Attribution string       `json:"attribution"`
}

// Snapshot is the read-only view of the application state served to the page
type Snapshot struct {
	Record  LocationRecord `json:"record"`
	Status  string         `json:"status"`
	Display Display        `json:"display"`
	Map     *MapScene      `json:"map,omitempty"`
}

// SearchRequest is the body of POST /v1/search
type SearchRequest struct {
	Query string `json:"query" example:"8.8.8.8"`
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}
