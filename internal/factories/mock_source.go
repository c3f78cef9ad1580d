package factories

import (
	"sync"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

// SyntheticMock is a generated fallback dataset, sized by configuration.
// Menus are generated on first request and then kept, so a restaurant shows the
// same menu for the life of the process.
type SyntheticMock struct {
	restaurants []models.Restaurant
	byID        map[string]int
	menus       *MenuItemFactory

	mu      sync.Mutex
	details map[string]models.RestaurantDetail
}

func NewSyntheticMock(cfg models.UpstreamConfig) *SyntheticMock {
	restaurants := NewRestaurantFactory(cfg.SyntheticSeed, cfg.ImageCDNURL).CreateRestaurants(cfg.SyntheticCount)
	byID := make(map[string]int, len(restaurants))
	for i, r := range restaurants {
		byID[r.ID] = i
	}
	return &SyntheticMock{
		restaurants: restaurants,
		byID:        byID,
		menus:       NewMenuItemFactory(cfg.SyntheticSeed+1, cfg.MenuImageCDNURL),
		details:     make(map[string]models.RestaurantDetail),
	}
}

func (s *SyntheticMock) Restaurants() []models.Restaurant {
	out := make([]models.Restaurant, len(s.restaurants))
	for i, r := range s.restaurants {
		r.Cuisine = append([]string(nil), r.Cuisine...)
		out[i] = r
	}
	return out
}

func (s *SyntheticMock) Detail(id string) models.RestaurantDetail {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.details[id]; ok {
		return d
	}

	restaurant := models.Restaurant{
		ID:           id,
		Name:         models.DefaultRestaurantName,
		Image:        models.PlaceholderImageURL,
		Cuisine:      []string{},
		DeliveryTime: models.DefaultDeliveryTime,
		PriceForTwo:  models.DefaultPriceForTwo,
	}
	if i, ok := s.byID[id]; ok {
		restaurant = s.restaurants[i]
		restaurant.Cuisine = append([]string(nil), restaurant.Cuisine...)
	}
	restaurant.Address = s.menus.fake.Address().StreetAddress() + ", " + s.menus.fake.Address().City()

	offers := []string{models.NoOffersPlaceholder}
	if restaurant.Discount != "" {
		offers = []string{restaurant.Discount}
	}

	d := models.RestaurantDetail{
		Restaurant:  restaurant,
		Description: s.menus.fake.Lorem().Sentence(12),
		Offers:      offers,
		Menu:        s.menus.CreateMenu(restaurant),
		Source:      models.SourceMock,
	}
	s.details[id] = d
	return d
}
