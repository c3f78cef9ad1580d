package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/normalizer"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 16 << 20

// Upstream fetches raw payloads from the aggregator API.
type Upstream interface {
	RestaurantList(ctx context.Context, loc models.Location, offset int) (any, error)
	RestaurantMenu(ctx context.Context, id string) (any, error)
}

// HTTPUpstream is the live aggregator client. No credentials are sent.
type HTTPUpstream struct {
	client  *http.Client
	listURL string
	menuURL string
}

func NewHTTPUpstream(cfg models.UpstreamConfig) *HTTPUpstream {
	return &HTTPUpstream{
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		listURL: cfg.ListURL,
		menuURL: cfg.MenuURL,
	}
}

func (u *HTTPUpstream) RestaurantList(ctx context.Context, loc models.Location, offset int) (any, error) {
	endpoint, err := url.Parse(u.listURL)
	if err != nil {
		return nil, fmt.Errorf("invalid list url: %w", err)
	}
	q := endpoint.Query()
	q.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	q.Set("is-seo-homepage-enabled", "true")
	q.Set("page_type", "DESKTOP_WEB_LISTING")
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	endpoint.RawQuery = q.Encode()
	return u.get(ctx, endpoint.String())
}

func (u *HTTPUpstream) RestaurantMenu(ctx context.Context, id string) (any, error) {
	return u.get(ctx, u.menuURL+url.QueryEscape(id))
}

func (u *HTTPUpstream) get(ctx context.Context, target string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &models.NetworkError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, &models.NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.NetworkError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &models.NetworkError{URL: target, Err: err}
	}
	return normalizer.Decode(body)
}
