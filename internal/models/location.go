package models

import "fmt"

type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	City string  `json:"city,omitempty"`
}

// SameCoordinates reports whether two locations point at the same spot,
// ignoring the city label.
func (l Location) SameCoordinates(other Location) bool {
	return l.Lat == other.Lat && l.Lon == other.Lon
}

func (l Location) String() string {
	if l.City != "" {
		return fmt.Sprintf("%s (%.4f, %.4f)", l.City, l.Lat, l.Lon)
	}
	return fmt.Sprintf("(%.4f, %.4f)", l.Lat, l.Lon)
}
