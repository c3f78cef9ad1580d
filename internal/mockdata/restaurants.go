// Package mockdata holds the fixed fallback dataset served whenever live
// upstream data is unavailable or empty.
package mockdata

import "github.com/chrisdamba/foodbrowse/internal/models"

var restaurants = []models.Restaurant{
	{
		ID:           "1",
		Name:         "Biryani House",
		Image:        "https://images.unsplash.com/photo-1633945274405-b6c8069a1e43?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"North Indian", "Biryani"},
		Rating:       4.3,
		DeliveryTime: 25,
		PriceForTwo:  400,
		Discount:     "50% OFF up to ₹100",
	},
	{
		ID:           "2",
		Name:         "Spice Garden",
		Image:        "https://images.unsplash.com/photo-1546833998-877b37c2e5c6?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"South Indian", "Chinese"},
		Rating:       4.1,
		DeliveryTime: 35,
		PriceForTwo:  350,
	},
	{
		ID:           "3",
		Name:         "The Burger Club",
		Image:        "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"American", "Fast Food"},
		Rating:       4.4,
		DeliveryTime: 20,
		PriceForTwo:  300,
		Discount:     "Buy 1 Get 1 Free",
	},
	{
		ID:           "4",
		Name:         "Pizza Paradise",
		Image:        "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Italian", "Pizzas"},
		Rating:       4.2,
		DeliveryTime: 30,
		PriceForTwo:  450,
	},
	{
		ID:           "5",
		Name:         "Punjabi Dhaba",
		Image:        "https://images.unsplash.com/photo-1631292116269-8b6f48e6a1d6?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"North Indian", "Punjabi"},
		Rating:       3.9,
		DeliveryTime: 40,
		PriceForTwo:  300,
		Discount:     "30% OFF",
	},
	{
		ID:           "6",
		Name:         "China Town",
		Image:        "https://images.unsplash.com/photo-1563245372-f21724e3856d?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Chinese", "Thai"},
		Rating:       4.0,
		DeliveryTime: 35,
		PriceForTwo:  350,
	},
	{
		ID:           "7",
		Name:         "South Indian Delights",
		Image:        "https://images.unsplash.com/photo-1610192244261-3f33de3f55e4?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"South Indian", "Dosa"},
		Rating:       4.5,
		DeliveryTime: 30,
		PriceForTwo:  250,
		Discount:     "20% OFF",
	},
	{
		ID:           "8",
		Name:         "Healthy Bowls",
		Image:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Salads", "Healthy Food"},
		Rating:       4.2,
		DeliveryTime: 25,
		PriceForTwo:  350,
	},
	{
		ID:           "9",
		Name:         "Green Leaf Pure Veg",
		Image:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Pure Veg", "Gujarati"},
		Rating:       4.6,
		DeliveryTime: 28,
		PriceForTwo:  280,
		Discount:     "FREE delivery",
	},
	{
		ID:           "10",
		Name:         "Tandoori Nights",
		Image:        "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Mughlai", "Kebabs"},
		Rating:       4.1,
		DeliveryTime: 45,
		PriceForTwo:  600,
	},
	{
		ID:           "11",
		Name:         "Sushi Central",
		Image:        "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Japanese", "Sushi"},
		Rating:       4.4,
		DeliveryTime: 38,
		PriceForTwo:  900,
		Discount:     "15% OFF",
	},
	{
		ID:           "12",
		Name:         "Chaat Corner",
		Image:        "https://images.unsplash.com/photo-1601050690597-df0568f70950?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Street Food", "Veg Snacks"},
		Rating:       3.8,
		DeliveryTime: 18,
		PriceForTwo:  150,
	},
	{
		ID:           "13",
		Name:         "Wok Express",
		Image:        "https://images.unsplash.com/photo-1585032226651-759b368d7246?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Chinese", "Asian"},
		Rating:       4.0,
		DeliveryTime: 32,
		PriceForTwo:  350,
		Discount:     "40% OFF up to ₹80",
	},
	{
		ID:           "14",
		Name:         "Dessert Studio",
		Image:        "https://images.unsplash.com/photo-1551024601-bec78aea704b?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Desserts", "Bakery"},
		Rating:       4.7,
		DeliveryTime: 22,
		PriceForTwo:  250,
	},
	{
		ID:           "15",
		Name:         "Coastal Curry Co.",
		Image:        "https://images.unsplash.com/photo-1626777552726-4a6b54c97e46?q=80&w=500&auto=format&fit=crop",
		Cuisine:      []string{"Seafood", "Kerala"},
		Rating:       4.3,
		DeliveryTime: 42,
		PriceForTwo:  550,
	},
}

// Restaurants returns a fresh copy of the fixed dataset.
func Restaurants() []models.Restaurant {
	return cloneRestaurants(restaurants)
}

func cloneRestaurants(in []models.Restaurant) []models.Restaurant {
	out := make([]models.Restaurant, len(in))
	for i, r := range in {
		r.Cuisine = append([]string(nil), r.Cuisine...)
		out[i] = r
	}
	return out
}

// Paginate slices items for a 1-based page. HasMore is true when the page came
// back full, the same heuristic applied to live data.
func Paginate(items []models.Restaurant, page, pageSize int) ([]models.Restaurant, bool) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		return []models.Restaurant{}, false
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []models.Restaurant{}, false
	}
	end := min(start+pageSize, len(items))
	slice := cloneRestaurants(items[start:end])
	return slice, len(slice) >= pageSize
}
