package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResult means the upstream answered but nothing usable could be
	// extracted. It is absorbed by substituting mock data.
	ErrEmptyResult  = errors.New("upstream returned no usable data")
	ErrLoadInFlight = errors.New("a page load is already in flight")
	ErrStaleResult  = errors.New("result superseded by a newer request")
	ErrNoLocation   = errors.New("no location set")
)

// NetworkError is a failed upstream request: transport failure or non-2xx.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is an upstream body that could not be decoded at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("unrecognized upstream payload: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

const (
	LocationPermissionDenied = "permission"
	LocationUnsupported      = "unsupported"
	LocationTimeout          = "timeout"
)

// LocationError is terminal: it is surfaced to the caller and never retried
// automatically.
type LocationError struct {
	Reason string
	Err    error
}

func (e *LocationError) Error() string {
	switch e.Reason {
	case LocationPermissionDenied:
		return "could not access your location, please enable location services"
	case LocationUnsupported:
		return "geolocation is not supported"
	case LocationTimeout:
		return "timed out waiting for your location"
	}
	return fmt.Sprintf("location unavailable: %v", e.Err)
}

func (e *LocationError) Unwrap() error { return e.Err }
