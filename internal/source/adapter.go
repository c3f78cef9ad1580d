package source

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/mockdata"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/normalizer"
)

const (
	listFailureNotice   = "Failed to fetch restaurants, showing sample restaurants instead"
	detailFailureNotice = "Failed to fetch restaurant details, showing a sample menu instead"
)

// MockSource serves the fallback dataset.
type MockSource interface {
	Restaurants() []models.Restaurant
	Detail(id string) models.RestaurantDetail
}

// FixedMock serves the hand-authored dataset in mockdata.
type FixedMock struct{}

func (FixedMock) Restaurants() []models.Restaurant { return mockdata.Restaurants() }

func (FixedMock) Detail(id string) models.RestaurantDetail { return mockdata.Detail(id) }

// Adapter decides between live normalized data and the mock source. Callers
// get the same Page contract either way.
type Adapter struct {
	upstream   Upstream
	normalizer *normalizer.Normalizer
	mock       MockSource
	pageSize   int
	mockDelay  time.Duration
}

func NewAdapter(upstream Upstream, norm *normalizer.Normalizer, mock MockSource, pageSize int, mockDelay time.Duration) *Adapter {
	if mock == nil {
		mock = FixedMock{}
	}
	if norm == nil {
		norm = &normalizer.Normalizer{}
	}
	return &Adapter{
		upstream:   upstream,
		normalizer: norm,
		mock:       mock,
		pageSize:   pageSize,
		mockDelay:  mockDelay,
	}
}

func (a *Adapter) PageSize() int { return a.pageSize }

// FetchRestaurants returns one page of restaurants for loc. The only error
// returned is a cancelled or expired ctx; upstream failures degrade to mock
// data with a Notice for the user.
//
// HasMore is inferred from a full page, not from an upstream total, so a final
// page of exactly pageSize items reports HasMore and the next page is empty.
// Mock data stands in only for page 1; an empty later page ends the feed.
func (a *Adapter) FetchRestaurants(ctx context.Context, loc models.Location, page int) (models.Page, error) {
	if page < 1 {
		page = 1
	}

	if a.upstream != nil {
		payload, err := a.upstream.RestaurantList(ctx, loc, (page-1)*a.pageSize)
		switch {
		case err == nil:
			items := a.normalizer.ExtractRestaurants(payload)
			if len(items) > 0 {
				return a.livePage(items, page), nil
			}
			if page > 1 {
				log.Printf("restaurant list for %s page %d: %v, end of results", loc, page, models.ErrEmptyResult)
				return models.Page{Items: []models.Restaurant{}, Page: page, Source: models.SourceLive}, nil
			}
			log.Printf("restaurant list for %s: %v, using mock data", loc, models.ErrEmptyResult)
		case ctx.Err() != nil:
			return models.Page{}, ctx.Err()
		case isParseError(err):
			log.Printf("restaurant list for %s: %v, using mock data", loc, err)
		default:
			log.Printf("Error fetching restaurants for %s: %v", loc, err)
			p, err := a.mockPage(ctx, page)
			if err != nil {
				return p, err
			}
			p.Notice = listFailureNotice
			return p, nil
		}
	}
	return a.mockPage(ctx, page)
}

// livePage cuts an upstream batch to one page. Offsets advance by pageSize, so
// rows past it come back on the next request.
func (a *Adapter) livePage(items []models.Restaurant, page int) models.Page {
	hasMore := len(items) >= a.pageSize
	if a.pageSize > 0 && len(items) > a.pageSize {
		items = items[:a.pageSize]
	}
	return models.Page{Items: items, Page: page, HasMore: hasMore, Source: models.SourceLive}
}

func (a *Adapter) mockPage(ctx context.Context, page int) (models.Page, error) {
	if err := a.simulateDelay(ctx); err != nil {
		return models.Page{}, err
	}
	items, hasMore := mockdata.Paginate(a.mock.Restaurants(), page, a.pageSize)
	return models.Page{Items: items, Page: page, HasMore: hasMore, Source: models.SourceMock}, nil
}

// FetchRestaurantDetail returns the restaurant, its offers and menu. A missing
// restaurant card or an empty menu is filled from the mock source.
func (a *Adapter) FetchRestaurantDetail(ctx context.Context, id string) (models.RestaurantDetail, error) {
	if a.upstream == nil {
		return a.mockDetail(ctx, id)
	}

	payload, err := a.upstream.RestaurantMenu(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return models.RestaurantDetail{}, ctx.Err()
		}
		log.Printf("Error fetching restaurant %s: %v", id, err)
		d, mockErr := a.mockDetail(ctx, id)
		if mockErr != nil {
			return d, mockErr
		}
		if !isParseError(err) {
			d.Notice = detailFailureNotice
		}
		return d, nil
	}

	fallback := a.mock.Detail(id)
	detail := models.RestaurantDetail{Source: models.SourceLive}

	restaurant, found := a.normalizer.ExtractRestaurantInfo(payload)
	if found {
		if restaurant.ID == "" {
			restaurant.ID = id
		}
		detail.Restaurant = restaurant
		detail.Offers = a.normalizer.ExtractOffers(payload)
	} else {
		log.Printf("restaurant %s: no restaurant card in payload, using mock details", id)
		detail.Restaurant = fallback.Restaurant
		detail.Description = fallback.Description
		detail.Offers = fallback.Offers
		detail.Source = models.SourceMock
	}

	detail.Menu = a.normalizer.ExtractMenuCategories(payload)
	if len(detail.Menu) == 0 {
		log.Printf("restaurant %s: %v, using mock menu", id, models.ErrEmptyResult)
		detail.Menu = fallback.Menu
	}
	return detail, nil
}

func (a *Adapter) mockDetail(ctx context.Context, id string) (models.RestaurantDetail, error) {
	if err := a.simulateDelay(ctx); err != nil {
		return models.RestaurantDetail{}, err
	}
	return a.mock.Detail(id), nil
}

func (a *Adapter) simulateDelay(ctx context.Context) error {
	if a.mockDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.mockDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Unreadable payloads are absorbed silently; only network failures reach the
// user as a notice.
func isParseError(err error) bool {
	var parseErr *models.ParseError
	return errors.As(err, &parseErr)
}
