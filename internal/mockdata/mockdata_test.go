package mockdata_test

import (
	"testing"

	"github.com/chrisdamba/foodbrowse/internal/mockdata"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantsAreValid(t *testing.T) {
	all := mockdata.Restaurants()
	require.Len(t, all, 15)

	seen := map[string]bool{}
	for _, r := range all {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.Name)
		assert.Greater(t, r.DeliveryTime, 0)
		assert.Greater(t, r.PriceForTwo, 0)
		assert.GreaterOrEqual(t, r.Rating, 0.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
	}
}

func TestRestaurantsReturnsCopies(t *testing.T) {
	first := mockdata.Restaurants()
	first[0].Name = "changed"
	first[0].Cuisine[0] = "changed"

	second := mockdata.Restaurants()
	assert.Equal(t, "Biryani House", second[0].Name)
	assert.Equal(t, "North Indian", second[0].Cuisine[0])
}

func TestPaginate(t *testing.T) {
	all := mockdata.Restaurants()

	cases := []struct {
		page    int
		size    int
		wantLen int
		hasMore bool
	}{
		{page: 1, size: 6, wantLen: 6, hasMore: true},
		{page: 2, size: 6, wantLen: 6, hasMore: true},
		{page: 3, size: 6, wantLen: 3, hasMore: false},
		{page: 4, size: 6, wantLen: 0, hasMore: false},
		{page: 0, size: 6, wantLen: 6, hasMore: true},
		{page: 1, size: 0, wantLen: 0, hasMore: false},
		{page: 1, size: 15, wantLen: 15, hasMore: true},
		{page: 2, size: 15, wantLen: 0, hasMore: false},
	}
	for _, tc := range cases {
		items, hasMore := mockdata.Paginate(all, tc.page, tc.size)
		assert.Len(t, items, tc.wantLen, "page %d size %d", tc.page, tc.size)
		assert.Equal(t, tc.hasMore, hasMore, "page %d size %d", tc.page, tc.size)
		assert.NotNil(t, items)
	}

	page2, _ := mockdata.Paginate(all, 2, 6)
	assert.Equal(t, "7", page2[0].ID)
}

func TestDetail(t *testing.T) {
	d := mockdata.Detail("42")
	assert.Equal(t, "42", d.Restaurant.ID)
	assert.Equal(t, models.SourceMock, d.Source)
	require.Len(t, d.Menu, 3)
	for _, c := range d.Menu {
		assert.NotEmpty(t, c.Items)
	}
	assert.Len(t, d.Offers, 2)

	d.Menu[0].Items[0].Name = "changed"
	assert.Equal(t, "Chicken Biryani", mockdata.Menu()[0].Items[0].Name)

	assert.Equal(t, "123", mockdata.Detail("").Restaurant.ID)
}
