package mockdata

import (
	"fmt"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

const (
	styledGridType = "type.googleapis.com/swiggy.gandalf.widgets.v2.GridWidget"
	styledInfoType = "type.googleapis.com/swiggy.presentation.food.v2.FavouriteRestaurantInfoWithStyle"
)

// ListPayload renders restaurants in the upstream listing shape, behind a
// leading banner card the way the live feed arranges them.
func ListPayload(items []models.Restaurant) map[string]any {
	grid := make([]any, 0, len(items))
	for _, r := range items {
		grid = append(grid, map[string]any{"info": restaurantInfo(r)})
	}
	return map[string]any{
		"statusCode": float64(0),
		"data": map[string]any{
			"cards": []any{
				map[string]any{"card": map[string]any{"card": map[string]any{
					"@type": styledGridType,
					"id":    "whats_on_your_mind",
				}}},
				map[string]any{"card": map[string]any{"card": map[string]any{
					"@type": styledGridType,
					"id":    "restaurant_grid_listing",
					"gridElements": map[string]any{
						"infoWithStyle": map[string]any{
							"@type":       styledInfoType,
							"restaurants": grid,
						},
					},
				}}},
			},
		},
	}
}

// DetailPayload renders a detail page in the upstream menu shape: restaurant
// card, offers card, then the grouped REGULAR menu.
func DetailPayload(d models.RestaurantDetail) map[string]any {
	info := restaurantInfo(d.Restaurant)
	info["costForTwo"] = float64(d.Restaurant.PriceForTwo * 100)
	info["locality"] = d.Restaurant.Address

	offers := make([]any, 0, len(d.Offers))
	for _, o := range d.Offers {
		offers = append(offers, map[string]any{"info": map[string]any{"header": o}})
	}

	regular := []any{
		map[string]any{"card": map[string]any{"card": map[string]any{
			"@type": "type.googleapis.com/swiggy.presentation.food.v2.MenuVegFilterAndBadge",
		}}},
	}
	for _, c := range d.Menu {
		itemCards := make([]any, 0, len(c.Items))
		for _, item := range c.Items {
			itemCards = append(itemCards, map[string]any{"card": map[string]any{"info": menuItemInfo(item)}})
		}
		regular = append(regular, map[string]any{"card": map[string]any{"card": map[string]any{
			"@type":      models.MenuItemTypeKey,
			"categoryId": c.ID,
			"title":      c.Name,
			"itemCards":  itemCards,
		}}})
	}

	return map[string]any{
		"data": map[string]any{
			"cards": []any{
				map[string]any{"card": map[string]any{"card": map[string]any{
					"@type": models.RestaurantTypeKey,
					"info":  info,
				}}},
				map[string]any{"card": map[string]any{"card": map[string]any{
					"gridElements": map[string]any{
						"infoWithStyle": map[string]any{"offers": offers},
					},
				}}},
				map[string]any{"groupedCard": map[string]any{
					"cardGroupMap": map[string]any{
						"REGULAR": map[string]any{"cards": regular},
					},
				}},
			},
		},
	}
}

func restaurantInfo(r models.Restaurant) map[string]any {
	cuisines := make([]any, 0, len(r.Cuisine))
	for _, c := range r.Cuisine {
		cuisines = append(cuisines, c)
	}
	info := map[string]any{
		"id":                r.ID,
		"name":              r.Name,
		"cloudinaryImageId": r.Image,
		"cuisines":          cuisines,
		"avgRating":         r.Rating,
		"sla":               map[string]any{"deliveryTime": float64(r.DeliveryTime)},
		"costForTwo":        fmt.Sprintf("₹%d for two", r.PriceForTwo),
	}
	if r.Discount != "" {
		info["aggregatedDiscountInfoV3"] = map[string]any{"header": r.Discount}
	}
	return info
}

func menuItemInfo(item models.MenuItem) map[string]any {
	info := map[string]any{
		"id":          item.ID,
		"name":        item.Name,
		"description": item.Description,
		"imageId":     item.Image,
		"price":       float64(item.Price * 100),
		"ratings": map[string]any{
			"aggregatedRating": map[string]any{"rating": fmt.Sprintf("%.1f", item.Rating)},
		},
	}
	if item.Veg {
		info["isVeg"] = float64(1)
	}
	if item.Bestseller {
		info["ribbon"] = map[string]any{"text": "Bestseller"}
	}
	return info
}
