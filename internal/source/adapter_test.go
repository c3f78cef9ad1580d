package source_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/mockdata"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/normalizer"
	"github.com/chrisdamba/foodbrowse/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jaipur = models.Location{Lat: 26.8947446, Lon: 75.8301169}

type upstreamStub struct {
	mu       sync.Mutex
	requests []*http.Request
	list     func(w http.ResponseWriter, r *http.Request)
	menu     func(w http.ResponseWriter, r *http.Request)
}

func (s *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.mu.Unlock()
	if strings.HasPrefix(r.URL.Path, "/list") {
		s.list(w, r)
		return
	}
	s.menu(w, r)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestAdapter(t *testing.T, stub *upstreamStub) *source.Adapter {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	cfg := models.UpstreamConfig{
		ListURL:        srv.URL + "/list",
		MenuURL:        srv.URL + "/menu?restaurantId=",
		RequestTimeout: 5 * time.Second,
	}
	return source.NewAdapter(source.NewHTTPUpstream(cfg), normalizer.New(cfg), source.FixedMock{}, 6, 0)
}

func TestFetchRestaurantsLive(t *testing.T) {
	live := mockdata.Restaurants()[:6]
	stub := &upstreamStub{list: func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, mockdata.ListPayload(live))
	}}
	adapter := newTestAdapter(t, stub)

	page, err := adapter.FetchRestaurants(context.Background(), jaipur, 2)
	require.NoError(t, err)

	assert.Equal(t, models.SourceLive, page.Source)
	assert.Equal(t, live, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.True(t, page.HasMore)
	assert.Empty(t, page.Notice)

	require.Len(t, stub.requests, 1)
	q := stub.requests[0].URL.Query()
	assert.Equal(t, "26.8947446", q.Get("lat"))
	assert.Equal(t, "75.8301169", q.Get("lng"))
	assert.Equal(t, "6", q.Get("offset"))
}

func TestFetchRestaurantsShortLivePageHasNoMore(t *testing.T) {
	stub := &upstreamStub{list: func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, mockdata.ListPayload(mockdata.Restaurants()[:4]))
	}}
	page, err := newTestAdapter(t, stub).FetchRestaurants(context.Background(), jaipur, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 4)
	assert.False(t, page.HasMore)
}

func TestFetchRestaurantsCutsLiveBatchToPageSize(t *testing.T) {
	batch := mockdata.Restaurants()[:10]
	stub := &upstreamStub{list: func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, mockdata.ListPayload(batch))
	}}

	page, err := newTestAdapter(t, stub).FetchRestaurants(context.Background(), jaipur, 1)
	require.NoError(t, err)
	assert.Equal(t, models.SourceLive, page.Source)
	assert.Equal(t, batch[:6], page.Items)
	assert.True(t, page.HasMore)
}

func TestFetchRestaurantsEmptyLaterPageEndsFeed(t *testing.T) {
	stub := &upstreamStub{list: func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"data": map[string]any{"cards": []any{}}})
	}}

	page, err := newTestAdapter(t, stub).FetchRestaurants(context.Background(), jaipur, 2)
	require.NoError(t, err)
	assert.Equal(t, models.SourceLive, page.Source)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.Notice)
}

func TestFetchRestaurantsNetworkFailureFallsBackWithNotice(t *testing.T) {
	stub := &upstreamStub{list: func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}}
	page, err := newTestAdapter(t, stub).FetchRestaurants(context.Background(), jaipur, 1)
	require.NoError(t, err)

	assert.Equal(t, models.SourceMock, page.Source)
	assert.NotEmpty(t, page.Notice)
	assert.Equal(t, mockdata.Restaurants()[:6], page.Items)
	assert.True(t, page.HasMore)
}

func TestFetchRestaurantsUnreadableOrEmptyFallsBackSilently(t *testing.T) {
	bodies := []string{"<html>captcha</html>", `{}`, `{"data":{"cards":[]}}`}
	for _, body := range bodies {
		stub := &upstreamStub{list: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}}
		page, err := newTestAdapter(t, stub).FetchRestaurants(context.Background(), jaipur, 1)
		require.NoError(t, err, body)
		assert.Equal(t, models.SourceMock, page.Source, body)
		assert.Empty(t, page.Notice, body)
		assert.Len(t, page.Items, 6, body)
	}
}

func TestFetchRestaurantsCancelled(t *testing.T) {
	stub := &upstreamStub{list: func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}}
	adapter := newTestAdapter(t, stub)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := adapter.FetchRestaurants(ctx, jaipur, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockPagination(t *testing.T) {
	adapter := source.NewAdapter(nil, nil, nil, 6, 0)

	var sizes []int
	var more []bool
	for page := 1; page <= 3; page++ {
		p, err := adapter.FetchRestaurants(context.Background(), jaipur, page)
		require.NoError(t, err)
		assert.Equal(t, models.SourceMock, p.Source)
		sizes = append(sizes, len(p.Items))
		more = append(more, p.HasMore)
	}
	assert.Equal(t, []int{6, 6, 3}, sizes)
	assert.Equal(t, []bool{true, true, false}, more)
}

func TestMockDelayHonoursContext(t *testing.T) {
	adapter := source.NewAdapter(nil, nil, nil, 6, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.FetchRestaurants(ctx, jaipur, 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = adapter.FetchRestaurantDetail(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchRestaurantDetailLive(t *testing.T) {
	want := mockdata.Detail("777")
	want.Restaurant.Name = "Live Kitchen"
	want.Description = ""
	want.Source = models.SourceLive

	stub := &upstreamStub{menu: func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "777", r.URL.Query().Get("restaurantId"))
		writeJSON(t, w, mockdata.DetailPayload(want))
	}}
	got, err := newTestAdapter(t, stub).FetchRestaurantDetail(context.Background(), "777")
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestFetchRestaurantDetailFallbacks(t *testing.T) {
	t.Run("network failure", func(t *testing.T) {
		stub := &upstreamStub{menu: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}}
		got, err := newTestAdapter(t, stub).FetchRestaurantDetail(context.Background(), "5")
		require.NoError(t, err)
		assert.Equal(t, models.SourceMock, got.Source)
		assert.Equal(t, "5", got.Restaurant.ID)
		assert.NotEmpty(t, got.Notice)
		assert.Equal(t, mockdata.Menu(), got.Menu)
	})

	t.Run("unreadable body", func(t *testing.T) {
		stub := &upstreamStub{menu: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}}
		got, err := newTestAdapter(t, stub).FetchRestaurantDetail(context.Background(), "5")
		require.NoError(t, err)
		assert.Equal(t, models.SourceMock, got.Source)
		assert.Empty(t, got.Notice)
	})

	t.Run("missing restaurant card and empty menu", func(t *testing.T) {
		stub := &upstreamStub{menu: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{"data": map[string]any{"cards": []any{}}})
		}}
		got, err := newTestAdapter(t, stub).FetchRestaurantDetail(context.Background(), "5")
		require.NoError(t, err)
		assert.Equal(t, models.SourceMock, got.Source)
		assert.Equal(t, "5", got.Restaurant.ID)
		assert.Equal(t, mockdata.Detail("5").Offers, got.Offers)
		assert.Equal(t, mockdata.Menu(), got.Menu)
	})

	t.Run("live restaurant with empty menu", func(t *testing.T) {
		d := mockdata.Detail("8")
		d.Menu = nil
		stub := &upstreamStub{menu: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, mockdata.DetailPayload(d))
		}}
		got, err := newTestAdapter(t, stub).FetchRestaurantDetail(context.Background(), "8")
		require.NoError(t, err)
		assert.Equal(t, models.SourceLive, got.Source)
		assert.Equal(t, d.Restaurant.Name, got.Restaurant.Name)
		assert.Equal(t, mockdata.Menu(), got.Menu)
	})
}
