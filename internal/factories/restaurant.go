package factories

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var allCuisines = []string{"North Indian", "South Indian", "Chinese", "Italian", "American", "Fast Food", "Biryani", "Pizzas", "Desserts", "Pure Veg", "Thai", "Japanese", "Mexican", "Street Food", "Healthy Food", "Kebabs", "Bakery", "Seafood"}

var discountLabels = []string{"50% OFF up to ₹100", "Buy 1 Get 1 Free", "30% OFF", "20% OFF", "FREE delivery", "₹125 OFF above ₹249"}

// RestaurantFactory builds synthetic restaurants for the large mock source.
// It is safe for concurrent use.
type RestaurantFactory struct {
	mu       sync.Mutex
	fake     faker.Faker
	rng      *rand.Rand
	imageCDN string
	names    sync.Map // to keep names unique
}

func NewRestaurantFactory(seed int64, imageCDN string) *RestaurantFactory {
	return &RestaurantFactory{
		fake:     faker.NewWithSeed(rand.NewSource(seed)),
		rng:      rand.New(rand.NewSource(seed)),
		imageCDN: imageCDN,
	}
}

func (rf *RestaurantFactory) CreateRestaurant() models.Restaurant {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	restaurant := models.Restaurant{
		ID:           cuid.New(),
		Name:         rf.createUniqueName(rf.fake.Company().Name()),
		Image:        rf.imageCDN + strings.ToLower(rf.fake.RandomStringWithLength(20)),
		Cuisine:      rf.randomCuisines(),
		Rating:       math.Round(rf.fake.Float64(1, 30, 50)) / 10,
		DeliveryTime: rf.fake.IntBetween(15, 55),
		PriceForTwo:  rf.fake.IntBetween(3, 16) * 50,
	}
	if rf.rng.Float64() < 0.4 {
		restaurant.Discount = discountLabels[rf.rng.Intn(len(discountLabels))]
	}
	return restaurant
}

// CreateRestaurants builds n restaurants in creation order.
func (rf *RestaurantFactory) CreateRestaurants(n int) []models.Restaurant {
	out := make([]models.Restaurant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, rf.CreateRestaurant())
	}
	return out
}

func (rf *RestaurantFactory) createUniqueName(name string) string {
	candidate := name
	counter := 2
	for {
		if _, exists := rf.names.LoadOrStore(candidate, true); !exists {
			return candidate
		}
		candidate = fmt.Sprintf("%s %d", name, counter)
		counter++
	}
}

func (rf *RestaurantFactory) randomCuisines() []string {
	count := rf.rng.Intn(3) + 1 // 1 to 3 cuisines
	picked := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for len(picked) < count {
		c := allCuisines[rf.rng.Intn(len(allCuisines))]
		if seen[c] {
			continue
		}
		seen[c] = true
		picked = append(picked, c)
	}
	return picked
}
