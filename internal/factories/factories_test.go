package factories_test

import (
	"testing"

	"github.com/chrisdamba/foodbrowse/internal/factories"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurants(t *testing.T) {
	rf := factories.NewRestaurantFactory(7, "https://cdn/")
	restaurants := rf.CreateRestaurants(40)
	require.Len(t, restaurants, 40)

	ids := map[string]bool{}
	names := map[string]bool{}
	for _, r := range restaurants {
		assert.False(t, ids[r.ID], "duplicate id")
		assert.False(t, names[r.Name], "duplicate name %s", r.Name)
		ids[r.ID] = true
		names[r.Name] = true

		assert.NotEmpty(t, r.Cuisine)
		assert.LessOrEqual(t, len(r.Cuisine), 3)
		assert.GreaterOrEqual(t, r.Rating, 3.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
		assert.Greater(t, r.DeliveryTime, 0)
		assert.Greater(t, r.PriceForTwo, 0)
		assert.Contains(t, r.Image, "https://cdn/")
	}
}

func TestCreateMenu(t *testing.T) {
	restaurant := models.Restaurant{ID: "r1", Cuisine: []string{"Biryani", "Chinese"}}
	mf := factories.NewMenuItemFactory(3, "https://menu-cdn/")

	menu := mf.CreateMenu(restaurant)
	require.GreaterOrEqual(t, len(menu), 2)
	require.LessOrEqual(t, len(menu), 4)

	seen := map[string]bool{}
	for _, category := range menu {
		require.NotEmpty(t, category.Items, category.Name)
		for _, item := range category.Items {
			assert.False(t, seen[item.ID])
			seen[item.ID] = true
			assert.Greater(t, item.Price, 0)
			assert.NotEmpty(t, item.Name)
			assert.Contains(t, item.Image, "https://menu-cdn/")
		}
	}
}

func TestSyntheticMock(t *testing.T) {
	mock := factories.NewSyntheticMock(models.UpstreamConfig{SyntheticCount: 25, SyntheticSeed: 42})

	all := mock.Restaurants()
	require.Len(t, all, 25)
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", mock.Restaurants()[0].Name)

	id := all[3].ID
	detail := mock.Detail(id)
	assert.Equal(t, models.SourceMock, detail.Source)
	assert.Equal(t, id, detail.Restaurant.ID)
	assert.Equal(t, all[3].Cuisine, detail.Restaurant.Cuisine)
	assert.NotEmpty(t, detail.Restaurant.Address)
	assert.NotEmpty(t, detail.Offers)
	assert.NotEmpty(t, detail.Menu)
	assert.Equal(t, detail, mock.Detail(id))

	unknown := mock.Detail("does-not-exist")
	assert.Equal(t, "does-not-exist", unknown.Restaurant.ID)
	assert.Equal(t, models.DefaultRestaurantName, unknown.Restaurant.Name)
	assert.Equal(t, []string{models.NoOffersPlaceholder}, unknown.Offers)
}
