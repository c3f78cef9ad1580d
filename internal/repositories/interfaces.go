package repositories

import (
	"context"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

type RestaurantRepository interface {
	BulkUpsert(ctx context.Context, restaurants []models.Restaurant) error
	GetAll(ctx context.Context) (map[string]models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	// ReplaceMenu swaps the stored menu of one restaurant for categories.
	ReplaceMenu(ctx context.Context, restaurantID string, categories []models.MenuCategory) error
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuCategory, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
