package normalizer

import (
	"fmt"
	"math"
	"strings"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

// ExtractRestaurantInfo maps the restaurant metadata card of a detail payload.
// ok is false when no such card exists; the returned value is still fully
// defaulted.
func (n *Normalizer) ExtractRestaurantInfo(payload any) (models.Restaurant, bool) {
	cards, _ := List(payload, "data", "cards")
	for _, card := range cards {
		if tag, _ := String(card, "card", "card", "@type"); tag != models.RestaurantTypeKey {
			continue
		}
		info, ok := Object(card, "card", "card", "info")
		if !ok {
			continue
		}
		r := n.restaurantFromInfo(info)
		r.Address = joinNonEmpty(", ",
			stringOr("", info, "locality"),
			stringOr("", info, "areaName"),
			stringOr("", info, "city"),
		)
		return r, true
	}
	return n.restaurantFromInfo(nil), false
}

// ExtractOffers returns the offer headers of the detail payload, or a single
// placeholder entry when there are none.
func (n *Normalizer) ExtractOffers(payload any) []string {
	cards, _ := List(payload, "data", "cards")
	for _, card := range cards {
		offers, ok := List(card, "card", "card", "gridElements", "infoWithStyle", "offers")
		if !ok {
			continue
		}
		headers := make([]string, 0, len(offers))
		for i := range offers {
			if h, ok := String(offers, i, "info", "header"); ok {
				headers = append(headers, h)
			}
		}
		if len(headers) > 0 {
			return headers
		}
	}
	return []string{models.NoOffersPlaceholder}
}

// ExtractMenuCategories maps the REGULAR card group into categories. Only
// categories holding at least one item are returned.
func (n *Normalizer) ExtractMenuCategories(payload any) []models.MenuCategory {
	out := []models.MenuCategory{}

	cards, _ := List(payload, "data", "cards")
	var regular []any
	for _, card := range cards {
		if group, ok := List(card, "groupedCard", "cardGroupMap", "REGULAR", "cards"); ok {
			regular = group
			break
		}
	}

	for idx, card := range regular {
		inner, ok := Object(card, "card", "card")
		if !ok {
			continue
		}
		if tag, _ := String(inner, "@type"); tag != models.MenuItemTypeKey {
			continue
		}
		category := models.MenuCategory{
			ID:   stringOr(fmt.Sprintf("cat%d", idx+1), inner, "categoryId"),
			Name: stringOr("Menu", inner, "title"),
		}
		itemCards, _ := List(inner, "itemCards")
		for i := range itemCards {
			info, ok := Object(itemCards, i, "card", "info")
			if !ok {
				continue
			}
			category.Items = append(category.Items, n.menuItemFromInfo(info, fmt.Sprintf("%s-item%d", category.ID, i+1)))
		}
		if len(category.Items) > 0 {
			out = append(out, category)
		}
	}
	return out
}

func (n *Normalizer) menuItemFromInfo(info map[string]any, fallbackID string) models.MenuItem {
	item := models.MenuItem{
		ID:          stringOr(fallbackID, info, "id"),
		Name:        stringOr(models.DefaultMenuItemName, info, "name"),
		Description: stringOr("", info, "description"),
		Image:       imageURL(n.MenuImageCDN, stringOr("", info, "imageId")),
	}

	minor, ok := Float(info, "price")
	if !ok || minor <= 0 {
		minor, ok = Float(info, "defaultPrice")
	}
	if ok && minor > 0 {
		item.Price = int(math.Round(minor / 100))
	}

	if veg, ok := Int(info, "isVeg"); ok {
		item.Veg = veg == 1
	}
	if ribbon, ok := String(info, "ribbon", "text"); ok {
		item.Bestseller = ribbon == "Bestseller"
	}
	if rating, ok := Float(info, "ratings", "aggregatedRating", "rating"); ok {
		item.Rating = clampRating(rating)
	}
	return item
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
