package normalizer

import (
	"math"
	"strings"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

var carouselCardIDs = map[string]bool{
	"restaurant_grid_listing": true,
	"top_brands_for_you":      true,
}

const styledGridSuffix = "FavouriteRestaurantInfoWithStyle"

// Normalizer turns upstream payloads into domain models. The zero value works
// but produces placeholder image URLs; set the CDN prefixes from config.
type Normalizer struct {
	ImageCDN     string
	MenuImageCDN string
}

func New(cfg models.UpstreamConfig) *Normalizer {
	return &Normalizer{ImageCDN: cfg.ImageCDNURL, MenuImageCDN: cfg.MenuImageCDNURL}
}

// ExtractRestaurants returns the restaurants of the first recognised grid in
// the listing payload, in upstream order. An unrecognised payload yields an
// empty, non-nil slice.
func (n *Normalizer) ExtractRestaurants(payload any) []models.Restaurant {
	cards, _ := List(payload, "data", "cards")

	grid, ok := findRestaurantGrid(cards)
	if !ok {
		return []models.Restaurant{}
	}

	seen := make(map[string]bool, len(grid))
	out := make([]models.Restaurant, 0, len(grid))
	for _, entry := range grid {
		info, ok := Object(entry, "info")
		if !ok {
			continue
		}
		r := n.restaurantFromInfo(info)
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

func findRestaurantGrid(cards []any) ([]any, bool) {
	for _, card := range cards {
		restaurants, ok := gridRestaurants(card)
		if !ok {
			continue
		}
		styleType, _ := String(card, "card", "card", "gridElements", "infoWithStyle", "@type")
		if strings.HasSuffix(styleType, styledGridSuffix) {
			return restaurants, true
		}
		if id, _ := String(card, "card", "card", "id"); carouselCardIDs[id] {
			return restaurants, true
		}
	}
	// deeper scan: any card carrying a restaurant grid at all
	for _, card := range cards {
		if restaurants, ok := gridRestaurants(card); ok {
			return restaurants, true
		}
	}
	return nil, false
}

func gridRestaurants(card any) ([]any, bool) {
	restaurants, ok := List(card, "card", "card", "gridElements", "infoWithStyle", "restaurants")
	if !ok || len(restaurants) == 0 {
		return nil, false
	}
	return restaurants, true
}

func (n *Normalizer) restaurantFromInfo(info map[string]any) models.Restaurant {
	r := models.Restaurant{
		ID:           stringOr("", info, "id"),
		Name:         stringOr(models.DefaultRestaurantName, info, "name"),
		Image:        imageURL(n.ImageCDN, stringOr("", info, "cloudinaryImageId")),
		Cuisine:      Strings(info, "cuisines"),
		DeliveryTime: models.DefaultDeliveryTime,
		PriceForTwo:  models.DefaultPriceForTwo,
		Discount:     discountLabel(info),
	}
	if rating, ok := Float(info, "avgRating"); ok {
		r.Rating = clampRating(rating)
	}
	if minutes, ok := Int(info, "sla", "deliveryTime"); ok && minutes > 0 {
		r.DeliveryTime = minutes
	}
	if price, ok := priceForTwo(info); ok {
		r.PriceForTwo = price
	}
	return r
}

// priceForTwo reads costForTwo, which the listing sends as a display string
// ("₹400 for two") and the detail endpoint sends in minor units.
func priceForTwo(info map[string]any) (int, bool) {
	raw, ok := Get(info, "costForTwo")
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case string:
		if p, ok := digits(v); ok && p > 0 {
			return p, true
		}
	case float64:
		if p := int(v) / 100; p > 0 {
			return p, true
		}
	}
	return 0, false
}

func discountLabel(info map[string]any) string {
	header, _ := String(info, "aggregatedDiscountInfoV3", "header")
	sub, _ := String(info, "aggregatedDiscountInfoV3", "subHeader")
	return strings.TrimSpace(header + " " + sub)
}

func clampRating(r float64) float64 {
	return math.Max(0, math.Min(5, r))
}
