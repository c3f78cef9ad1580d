package source

import (
	"context"
	"log"
	"sync"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

// PageFetcher is the part of Adapter a Feed needs.
type PageFetcher interface {
	FetchRestaurants(ctx context.Context, loc models.Location, page int) (models.Page, error)
}

// FeedState is a point-in-time copy of a Feed.
type FeedState struct {
	Location   *models.Location    `json:"location,omitempty"`
	Items      []models.Restaurant `json:"items"`
	Page       int                 `json:"page"`
	HasMore    bool                `json:"hasMore"`
	Loading    bool                `json:"loading"`
	Source     string              `json:"source,omitempty"`
	Notice     string              `json:"notice,omitempty"`
	Error      string              `json:"error,omitempty"`
	Generation uint64              `json:"generation"`
}

// Feed accumulates restaurant pages for one location.
//
// Every reset (new location, Refetch) bumps the generation. A fetch remembers
// the generation it was issued under and its result is committed only if that
// is still the latest one, so a slow response for an old location can never
// overwrite newer state. Network I/O happens outside the lock.
type Feed struct {
	fetcher PageFetcher

	mu         sync.Mutex
	location   *models.Location
	items      []models.Restaurant
	page       int
	hasMore    bool
	loading    bool
	source     string
	notice     string
	lastErr    error
	generation uint64
}

func NewFeed(fetcher PageFetcher) *Feed {
	return &Feed{fetcher: fetcher, items: []models.Restaurant{}}
}

// SetLocation switches the feed to loc and reloads page 1. A location that
// only differs in its city label is recorded without a re-fetch.
func (f *Feed) SetLocation(ctx context.Context, loc models.Location) error {
	gen, changed := f.moveTo(loc)
	if !changed {
		return nil
	}
	return f.fetch(ctx, gen, loc, 1, false)
}

func (f *Feed) moveTo(loc models.Location) (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.location != nil && f.location.SameCoordinates(loc) {
		if loc.City != "" {
			f.location.City = loc.City
		}
		return f.generation, false
	}
	f.location = &loc
	return f.resetLocked(), true
}

// SetCity labels the current location without re-fetching, provided the feed
// is still at the coordinates the label was resolved for.
func (f *Feed) SetCity(at models.Location, city string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.location == nil || !f.location.SameCoordinates(at) {
		return false
	}
	f.location.City = city
	return true
}

// Refetch reloads page 1 for the current location, superseding anything in
// flight.
func (f *Feed) Refetch(ctx context.Context) error {
	f.mu.Lock()
	if f.location == nil {
		f.mu.Unlock()
		return models.ErrNoLocation
	}
	loc := *f.location
	gen := f.resetLocked()
	f.mu.Unlock()

	return f.fetch(ctx, gen, loc, 1, false)
}

// LoadMore appends the next page. It refuses to start while another fetch for
// this feed is outstanding and does nothing once HasMore is false.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.location == nil {
		f.mu.Unlock()
		return models.ErrNoLocation
	}
	if f.loading {
		f.mu.Unlock()
		return models.ErrLoadInFlight
	}
	if !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	loc := *f.location
	gen := f.generation
	next := f.page + 1
	f.mu.Unlock()

	return f.fetch(ctx, gen, loc, next, true)
}

// State returns a copy safe to hand to renderers.
func (f *Feed) State() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := FeedState{
		Items:      append([]models.Restaurant(nil), f.items...),
		Page:       f.page,
		HasMore:    f.hasMore,
		Loading:    f.loading,
		Source:     f.source,
		Notice:     f.notice,
		Generation: f.generation,
	}
	if f.location != nil {
		loc := *f.location
		state.Location = &loc
	}
	if f.lastErr != nil {
		state.Error = f.lastErr.Error()
	}
	return state
}

func (f *Feed) resetLocked() uint64 {
	f.generation++
	f.items = []models.Restaurant{}
	f.page = 0
	f.hasMore = false
	f.loading = true
	f.notice = ""
	f.lastErr = nil
	return f.generation
}

func (f *Feed) fetch(ctx context.Context, gen uint64, loc models.Location, page int, appendItems bool) error {
	result, err := f.fetcher.FetchRestaurants(ctx, loc, page)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		log.Printf("discarding page %d for %s: %v", page, loc, models.ErrStaleResult)
		return models.ErrStaleResult
	}
	f.loading = false

	if err != nil {
		log.Printf("Error loading page %d for %s: %v", page, loc, err)
		f.lastErr = err
		return err
	}

	if appendItems {
		f.items = appendNew(f.items, result.Items)
	} else {
		f.items = appendNew([]models.Restaurant{}, result.Items)
	}
	f.page = result.Page
	f.hasMore = result.HasMore
	if !appendItems || len(result.Items) > 0 {
		f.source = result.Source
	}
	f.notice = result.Notice
	return nil
}

// appendNew appends the restaurants whose ids are not already in items.
func appendNew(items, page []models.Restaurant) []models.Restaurant {
	seen := make(map[string]struct{}, len(items)+len(page))
	for _, r := range items {
		seen[r.ID] = struct{}{}
	}
	for _, r := range page {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		items = append(items, r)
	}
	return items
}
