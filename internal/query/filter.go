// Package query derives the visible restaurant list from search text and the
// active filter chip.
package query

import (
	"slices"
	"strings"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

type Filter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var filters = []Filter{
	{ID: models.FilterAll, Label: "All"},
	{ID: models.FilterFastDelivery, Label: "Fast Delivery"},
	{ID: models.FilterOffers, Label: "Offers"},
	{ID: models.FilterTopRated, Label: "Top Rated"},
	{ID: models.FilterVeg, Label: "Pure Veg"},
	{ID: models.FilterPrice, Label: "Price: Low to High"},
}

// Filters lists the filter chips in display order.
func Filters() []Filter {
	return slices.Clone(filters)
}

// ParseFilter normalizes a filter id; anything unknown means all.
func ParseFilter(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, f := range filters {
		if f.ID == id {
			return id
		}
	}
	return models.FilterAll
}

// ApplyFilter returns the restaurants matching query, narrowed by filterID.
// The input is never modified. Order is preserved except for the price filter,
// which sorts ascending by price for two and keeps ties in input order.
func ApplyFilter(restaurants []models.Restaurant, query, filterID string) []models.Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	filterID = ParseFilter(filterID)

	out := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if !matchesQuery(r, q) || !matchesFilter(r, filterID) {
			continue
		}
		out = append(out, r)
	}

	if filterID == models.FilterPrice {
		slices.SortStableFunc(out, func(a, b models.Restaurant) int {
			return a.PriceForTwo - b.PriceForTwo
		})
	}
	return out
}

func matchesQuery(r models.Restaurant, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	return cuisineContains(r, q)
}

func matchesFilter(r models.Restaurant, filterID string) bool {
	switch filterID {
	case models.FilterFastDelivery:
		return r.DeliveryTime <= models.FastDeliveryMaxMinutes
	case models.FilterOffers:
		return r.HasDiscount()
	case models.FilterTopRated:
		return r.Rating >= models.TopRatedMinRating
	case models.FilterVeg:
		// there is no veg flag per restaurant; cuisine text is the proxy
		return cuisineContains(r, "veg")
	}
	return true
}

func cuisineContains(r models.Restaurant, needle string) bool {
	for _, c := range r.Cuisine {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}
