package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locatorFunc func(ctx context.Context) (models.Location, error)

func (f locatorFunc) Locate(ctx context.Context) (models.Location, error) { return f(ctx) }

var cities = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Hyderabad", "Kolkata"}

func TestResolveLocationClassifiesFailures(t *testing.T) {
	blocking := locatorFunc(func(ctx context.Context) (models.Location, error) {
		<-ctx.Done()
		return models.Location{}, ctx.Err()
	})
	denied := locatorFunc(func(context.Context) (models.Location, error) {
		return models.Location{}, source.ErrPermissionDenied
	})
	broken := locatorFunc(func(context.Context) (models.Location, error) {
		return models.Location{}, errors.New("gps exploded")
	})

	cases := []struct {
		name    string
		locator source.Locator
		reason  string
	}{
		{"timeout", blocking, models.LocationTimeout},
		{"denied", denied, models.LocationPermissionDenied},
		{"unsupported", source.UnsupportedLocator{}, models.LocationUnsupported},
		{"missing", nil, models.LocationUnsupported},
		{"other", broken, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := source.ResolveLocation(context.Background(), tc.locator, 20*time.Millisecond)
			var locErr *models.LocationError
			require.ErrorAs(t, err, &locErr)
			assert.Equal(t, tc.reason, locErr.Reason)
			assert.NotEmpty(t, locErr.Error())
		})
	}
}

func TestResolveLocationStatic(t *testing.T) {
	loc, err := source.ResolveLocation(context.Background(), source.StaticLocator{Lat: 1.5, Lon: 2.5}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, models.Location{Lat: 1.5, Lon: 2.5}, loc)
}

func TestHashCityResolver(t *testing.T) {
	resolver := source.HashCityResolver{Cities: cities}
	ctx := context.Background()

	cases := []struct {
		loc  models.Location
		want string
	}{
		{models.Location{Lat: 12.97, Lon: 77.59}, "Mumbai"},
		{models.Location{Lat: 19.07, Lon: 72.87}, "Delhi"},
		{models.Location{Lat: -10, Lon: -3}, "Delhi"},
		{models.Location{Lat: 0, Lon: 0}, "Mumbai"},
	}
	for _, tc := range cases {
		city, err := resolver.City(ctx, tc.loc)
		require.NoError(t, err)
		assert.Equal(t, tc.want, city, tc.loc.String())
	}

	_, err := source.HashCityResolver{}.City(ctx, jaipur)
	assert.Error(t, err)
}

func TestHashCityResolverHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.HashCityResolver{Cities: cities, Delay: time.Hour}.City(ctx, jaipur)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBrowserDetectLocation(t *testing.T) {
	feed := source.NewFeed(source.NewAdapter(nil, nil, nil, 6, 0))
	browser := source.NewBrowser(
		feed,
		source.StaticLocator{Lat: jaipur.Lat, Lon: jaipur.Lon},
		source.HashCityResolver{Cities: cities, Delay: 10 * time.Millisecond},
		time.Second,
	)

	require.NoError(t, browser.DetectLocation(context.Background()))
	assert.Len(t, feed.State().Items, 6)

	browser.Wait()
	state := feed.State()
	require.NotNil(t, state.Location)
	assert.Equal(t, "Mumbai", state.Location.City)
	assert.Equal(t, jaipur.Lat, state.Location.Lat)
}

func TestBrowserCityLookupAfterMoveIsIgnored(t *testing.T) {
	feed := source.NewFeed(source.NewAdapter(nil, nil, nil, 6, 0))
	browser := source.NewBrowser(
		feed,
		source.StaticLocator{Lat: jaipur.Lat, Lon: jaipur.Lon},
		source.HashCityResolver{Cities: cities, Delay: 50 * time.Millisecond},
		time.Second,
	)

	require.NoError(t, browser.DetectLocation(context.Background()))
	elsewhere := models.Location{Lat: 1, Lon: 1}
	require.NoError(t, feed.SetLocation(context.Background(), elsewhere))

	browser.Wait()
	assert.Empty(t, feed.State().Location.City)
}

func TestBrowserLocationFailure(t *testing.T) {
	feed := source.NewFeed(source.NewAdapter(nil, nil, nil, 6, 0))
	browser := source.NewBrowser(feed, source.UnsupportedLocator{}, nil, time.Second)

	err := browser.Refetch(context.Background())
	var locErr *models.LocationError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, models.LocationUnsupported, locErr.Reason)
	assert.Nil(t, feed.State().Location)
}
