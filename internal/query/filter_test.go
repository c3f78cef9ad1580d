package query_test

import (
	"testing"

	"github.com/chrisdamba/foodbrowse/internal/mockdata"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/query"
	"github.com/stretchr/testify/assert"
)

func ids(rs []models.Restaurant) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestApplyFilterAllIsIdentity(t *testing.T) {
	all := mockdata.Restaurants()
	assert.Equal(t, all, query.ApplyFilter(all, "", models.FilterAll))
	assert.Equal(t, all, query.ApplyFilter(all, "   ", "no-such-filter"))
}

func TestApplyFilterFastDeliveryKeepsOrder(t *testing.T) {
	got := query.ApplyFilter(mockdata.Restaurants(), "", models.FilterFastDelivery)
	assert.Equal(t, []string{"1", "3", "4", "7", "8", "9", "12", "14"}, ids(got))
	for _, r := range got {
		assert.LessOrEqual(t, r.DeliveryTime, models.FastDeliveryMaxMinutes)
	}
}

func TestApplyFilterOffersAndTopRated(t *testing.T) {
	all := mockdata.Restaurants()
	assert.Equal(t, []string{"1", "3", "5", "7", "9", "11", "13"}, ids(query.ApplyFilter(all, "", models.FilterOffers)))
	assert.Equal(t, []string{"1", "3", "4", "7", "8", "9", "11", "14", "15"}, ids(query.ApplyFilter(all, "", models.FilterTopRated)))
}

func TestApplyFilterVegUsesCuisine(t *testing.T) {
	got := query.ApplyFilter(mockdata.Restaurants(), "", models.FilterVeg)
	assert.Equal(t, []string{"9", "12"}, ids(got))
}

func TestApplyFilterPriceSortIsStable(t *testing.T) {
	in := []models.Restaurant{
		{ID: "a", PriceForTwo: 400},
		{ID: "b", PriceForTwo: 200},
		{ID: "c", PriceForTwo: 400},
		{ID: "d", PriceForTwo: 200},
		{ID: "e", PriceForTwo: 100},
	}
	got := query.ApplyFilter(in, "", models.FilterPrice)
	assert.Equal(t, []string{"e", "b", "d", "a", "c"}, ids(got))
	assert.Equal(t, "a", in[0].ID, "input must not be reordered")
}

func TestApplyFilterSearchMatchesNameOrCuisine(t *testing.T) {
	in := []models.Restaurant{
		{ID: "name", Name: "Biryani Blues", Cuisine: []string{"Hyderabadi"}},
		{ID: "cuisine", Name: "Royal Kitchen", Cuisine: []string{"North Indian", "Biryani"}},
		{ID: "neither", Name: "Burger Barn", Cuisine: []string{"American"}},
	}
	assert.Equal(t, []string{"name", "cuisine"}, ids(query.ApplyFilter(in, "BIRYANI", models.FilterAll)))
	assert.Equal(t, []string{"name", "cuisine"}, ids(query.ApplyFilter(in, "  biryani ", "")))
}

func TestApplyFilterCombinesSearchAndFilter(t *testing.T) {
	got := query.ApplyFilter(mockdata.Restaurants(), "chinese", models.FilterOffers)
	assert.Equal(t, []string{"13"}, ids(got))
}

func TestApplyFilterEmptyInput(t *testing.T) {
	got := query.ApplyFilter(nil, "x", models.FilterPrice)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilters(t *testing.T) {
	filters := query.Filters()
	assert.Len(t, filters, 6)
	assert.Equal(t, models.FilterAll, filters[0].ID)

	filters[0].ID = "mutated"
	assert.Equal(t, models.FilterAll, query.Filters()[0].ID)
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, models.FilterTopRated, query.ParseFilter(" Top-Rated "))
	assert.Equal(t, models.FilterAll, query.ParseFilter("cheapest"))
	assert.Equal(t, models.FilterAll, query.ParseFilter(""))
}
