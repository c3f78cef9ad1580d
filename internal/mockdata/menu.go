package mockdata

import "github.com/chrisdamba/foodbrowse/internal/models"

var detail = models.RestaurantDetail{
	Restaurant: models.Restaurant{
		ID:           "123",
		Name:         "Biryani House Deluxe",
		Image:        "https://images.unsplash.com/photo-1633945274405-b6c8069a1e43?q=80&w=1000&auto=format&fit=crop",
		Cuisine:      []string{"North Indian", "Biryani", "Kebabs"},
		Rating:       4.3,
		DeliveryTime: 25,
		PriceForTwo:  400,
		Address:      "123 Food Street, Mumbai, Maharashtra",
	},
	Description: "Serving the most authentic Hyderabadi biryani and North Indian delicacies since 1998.",
	Offers: []string{
		"50% OFF up to ₹100",
		"FREE delivery on orders above ₹199",
	},
}

var menu = []models.MenuCategory{
	{
		ID:   "cat1",
		Name: "Recommended",
		Items: []models.MenuItem{
			{
				ID:          "item1",
				Name:        "Chicken Biryani",
				Description: "Fragrant basmati rice cooked with tender chicken pieces and aromatic spices.",
				Price:       220,
				Image:       "https://images.unsplash.com/photo-1589302168068-964664d93dc0?q=80&w=300&auto=format&fit=crop",
				Bestseller:  true,
				Rating:      4.5,
			},
			{
				ID:          "item2",
				Name:        "Paneer Butter Masala",
				Description: "Cottage cheese cubes simmered in rich tomato and butter gravy.",
				Price:       180,
				Image:       "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?q=80&w=300&auto=format&fit=crop",
				Veg:         true,
				Bestseller:  true,
				Rating:      4.2,
			},
		},
	},
	{
		ID:   "cat2",
		Name: "Biryani",
		Items: []models.MenuItem{
			{
				ID:          "item3",
				Name:        "Hyderabadi Dum Biryani",
				Description: "Signature Hyderabadi style biryani with basmati rice and meat cooked on slow fire.",
				Price:       250,
				Image:       "https://images.unsplash.com/photo-1633945274524-389f76ecb8f0?q=80&w=300&auto=format&fit=crop",
				Rating:      4.6,
			},
			{
				ID:          "item4",
				Name:        "Veg Biryani",
				Description: "Mixed vegetables and basmati rice cooked with aromatic spices.",
				Price:       180,
				Image:       "https://images.unsplash.com/photo-1645177628172-a94c1f96e6db?q=80&w=300&auto=format&fit=crop",
				Veg:         true,
				Rating:      4.0,
			},
		},
	},
	{
		ID:   "cat3",
		Name: "Starters",
		Items: []models.MenuItem{
			{
				ID:          "item5",
				Name:        "Chicken Tikka",
				Description: "Boneless chicken pieces marinated and grilled in clay oven.",
				Price:       210,
				Image:       "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?q=80&w=300&auto=format&fit=crop",
				Bestseller:  true,
				Rating:      4.4,
			},
			{
				ID:          "item6",
				Name:        "Paneer Tikka",
				Description: "Cubes of cottage cheese marinated with spices and grilled.",
				Price:       190,
				Image:       "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?q=80&w=300&auto=format&fit=crop",
				Veg:         true,
				Rating:      4.3,
			},
		},
	},
}

// Detail returns the fallback detail page re-labelled with the requested id,
// menu included.
func Detail(id string) models.RestaurantDetail {
	d := detail
	d.Restaurant.Cuisine = append([]string(nil), detail.Restaurant.Cuisine...)
	d.Offers = append([]string(nil), detail.Offers...)
	if id != "" {
		d.Restaurant.ID = id
	}
	d.Menu = Menu()
	d.Source = models.SourceMock
	return d
}

func Menu() []models.MenuCategory {
	out := make([]models.MenuCategory, len(menu))
	for i, c := range menu {
		c.Items = append([]models.MenuItem(nil), c.Items...)
		out[i] = c
	}
	return out
}
