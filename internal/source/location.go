package source

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnsupported      = errors.New("location capability unsupported")
)

// Locator is the host platform's coordinate capability.
type Locator interface {
	Locate(ctx context.Context) (models.Location, error)
}

// StaticLocator always reports the configured coordinates.
type StaticLocator struct {
	Lat, Lon float64
}

func (s StaticLocator) Locate(ctx context.Context) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}
	return models.Location{Lat: s.Lat, Lon: s.Lon}, nil
}

// UnsupportedLocator is used where no coordinate capability exists.
type UnsupportedLocator struct{}

func (UnsupportedLocator) Locate(context.Context) (models.Location, error) {
	return models.Location{}, ErrUnsupported
}

// ResolveLocation asks locator for coordinates within timeout and classifies
// any failure as a LocationError.
func ResolveLocation(ctx context.Context, locator Locator, timeout time.Duration) (models.Location, error) {
	if locator == nil {
		return models.Location{}, &models.LocationError{Reason: models.LocationUnsupported, Err: ErrUnsupported}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	loc, err := locator.Locate(ctx)
	if err == nil {
		return loc, nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.Location{}, &models.LocationError{Reason: models.LocationTimeout, Err: err}
	case errors.Is(err, ErrUnsupported):
		return models.Location{}, &models.LocationError{Reason: models.LocationUnsupported, Err: err}
	case errors.Is(err, ErrPermissionDenied):
		return models.Location{}, &models.LocationError{Reason: models.LocationPermissionDenied, Err: err}
	}
	return models.Location{}, &models.LocationError{Err: err}
}

// CityResolver turns coordinates into a city label on a best-effort basis.
type CityResolver interface {
	City(ctx context.Context, loc models.Location) (string, error)
}

// HashCityResolver stands in for reverse geocoding: it picks a city from a
// fixed list by the coordinate sum, after a short artificial delay.
type HashCityResolver struct {
	Cities []string
	Delay  time.Duration
}

func (h HashCityResolver) City(ctx context.Context, loc models.Location) (string, error) {
	if len(h.Cities) == 0 {
		return "", errors.New("no cities configured")
	}
	if h.Delay > 0 {
		timer := time.NewTimer(h.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	idx := int(math.Floor(math.Mod(math.Abs(loc.Lat+loc.Lon), float64(len(h.Cities)))))
	if idx < 0 || idx >= len(h.Cities) {
		idx = 0
	}
	return h.Cities[idx], nil
}

// Browser ties location detection to a Feed. City lookup runs in the
// background and never delays the first page.
type Browser struct {
	Feed            *Feed
	locator         Locator
	cities          CityResolver
	locationTimeout time.Duration

	wg sync.WaitGroup
}

func NewBrowser(feed *Feed, locator Locator, cities CityResolver, locationTimeout time.Duration) *Browser {
	return &Browser{
		Feed:            feed,
		locator:         locator,
		cities:          cities,
		locationTimeout: locationTimeout,
	}
}

// DetectLocation resolves coordinates and loads the first page for them. A
// LocationError is returned as is and not retried; the caller offers a manual
// retry.
func (b *Browser) DetectLocation(ctx context.Context) error {
	loc, err := ResolveLocation(ctx, b.locator, b.locationTimeout)
	if err != nil {
		log.Printf("Error getting location: %v", err)
		return err
	}

	gen, changed := b.Feed.moveTo(loc)
	if b.cities != nil {
		b.wg.Add(1)
		go b.lookupCity(context.WithoutCancel(ctx), loc)
	}
	if !changed {
		return nil
	}
	return b.Feed.fetch(ctx, gen, loc, 1, false)
}

// Refetch reloads the current location, or detects one if none is known yet.
func (b *Browser) Refetch(ctx context.Context) error {
	err := b.Feed.Refetch(ctx)
	if errors.Is(err, models.ErrNoLocation) {
		return b.DetectLocation(ctx)
	}
	return err
}

// Wait blocks until background city lookups have finished.
func (b *Browser) Wait() {
	b.wg.Wait()
}

func (b *Browser) lookupCity(ctx context.Context, loc models.Location) {
	defer b.wg.Done()
	ctx, cancel := context.WithTimeout(ctx, b.cityTimeout())
	defer cancel()

	city, err := b.cities.City(ctx, loc)
	if err != nil {
		log.Printf("Could not determine city for %s: %v", loc, err)
		return
	}
	if b.Feed.SetCity(loc, city) {
		log.Printf("Location detected: %s", city)
	}
}

func (b *Browser) cityTimeout() time.Duration {
	if b.locationTimeout > 0 {
		return b.locationTimeout
	}
	return 10 * time.Second
}
