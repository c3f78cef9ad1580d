package factories

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/jaswdr/faker"
)

var dishesByCuisine = map[string][]string{
	"North Indian": {"Butter Chicken", "Dal Makhani", "Paneer Tikka", "Garlic Naan"},
	"South Indian": {"Masala Dosa", "Idli Sambar", "Medu Vada", "Uttapam"},
	"Chinese":      {"Hakka Noodles", "Chilli Paneer", "Manchurian", "Fried Rice"},
	"Italian":      {"Margherita Pizza", "Penne Arrabbiata", "Lasagna", "Tiramisu"},
	"American":     {"Classic Cheeseburger", "Hot Dog", "BBQ Wings", "Apple Pie"},
	"Biryani":      {"Chicken Biryani", "Veg Biryani", "Mutton Biryani", "Egg Biryani"},
	"Desserts":     {"Gulab Jamun", "Brownie", "Rasmalai", "Cheesecake"},
	"Japanese":     {"Sushi Roll", "Ramen", "Tempura", "Miso Soup"},
	"Thai":         {"Pad Thai", "Green Curry", "Tom Yum Soup", "Mango Sticky Rice"},
	"Mexican":      {"Tacos", "Burrito", "Nachos", "Quesadilla"},
}

var vegDishes = map[string]bool{
	"Dal Makhani": true, "Paneer Tikka": true, "Garlic Naan": true, "Masala Dosa": true,
	"Idli Sambar": true, "Medu Vada": true, "Uttapam": true, "Hakka Noodles": true,
	"Chilli Paneer": true, "Margherita Pizza": true, "Penne Arrabbiata": true, "Veg Biryani": true,
	"Gulab Jamun": true, "Rasmalai": true, "Mango Sticky Rice": true, "Nachos": true,
}

var categoryNames = []string{"Recommended", "Mains", "Starters", "Desserts"}

type MenuItemFactory struct {
	fake     faker.Faker
	rng      *rand.Rand
	imageCDN string
}

func NewMenuItemFactory(seed int64, imageCDN string) *MenuItemFactory {
	return &MenuItemFactory{
		fake:     faker.NewWithSeed(rand.NewSource(seed)),
		rng:      rand.New(rand.NewSource(seed)),
		imageCDN: imageCDN,
	}
}

func (mf *MenuItemFactory) CreateMenuItem(restaurant models.Restaurant, n int) models.MenuItem {
	name := mf.dishFor(restaurant.Cuisine)
	return models.MenuItem{
		ID:          fmt.Sprintf("%s-%d", restaurant.ID, n),
		Name:        name,
		Description: mf.fake.Lorem().Sentence(10),
		Price:       mf.fake.IntBetween(8, 60) * 10,
		Image:       mf.imageCDN + mf.fake.UUID().V4(),
		Veg:         vegDishes[name],
		Bestseller:  mf.rng.Float64() < 0.25,
		Rating:      math.Round(mf.fake.Float64(1, 30, 50)) / 10,
	}
}

// CreateMenu builds a menu for restaurant; every category holds at least one
// item.
func (mf *MenuItemFactory) CreateMenu(restaurant models.Restaurant) []models.MenuCategory {
	count := mf.rng.Intn(len(categoryNames)-1) + 2 // 2 to 4 categories
	menu := make([]models.MenuCategory, 0, count)
	n := 0
	for i := 0; i < count; i++ {
		category := models.MenuCategory{
			ID:   fmt.Sprintf("cat%d", i+1),
			Name: categoryNames[i],
		}
		items := mf.rng.Intn(4) + 1
		for j := 0; j < items; j++ {
			n++
			category.Items = append(category.Items, mf.CreateMenuItem(restaurant, n))
		}
		menu = append(menu, category)
	}
	return menu
}

func (mf *MenuItemFactory) dishFor(cuisines []string) string {
	if len(cuisines) == 0 {
		return "Special of the Day"
	}
	cuisine := cuisines[mf.rng.Intn(len(cuisines))]
	if dishes, ok := dishesByCuisine[cuisine]; ok {
		return dishes[mf.rng.Intn(len(dishes))]
	}
	return "Special of the Day"
}
