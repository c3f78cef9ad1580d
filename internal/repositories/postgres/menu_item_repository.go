package postgres

import (
	"context"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/jackc/pgx/v5"
)

var menuItemColumns = []string{
	"restaurant_id", "id", "category_id", "category_name", "position",
	"name", "description", "price", "image", "veg", "bestseller", "rating",
}

type MenuItemRepository struct {
	db DB
}

func NewMenuItemRepository(db DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// menuRows flattens categories into COPY rows. Position keeps the menu order
// so GetByRestaurantID can rebuild it. Repeated item ids keep the first
// occurrence.
func menuRows(restaurantID string, categories []models.MenuCategory) [][]any {
	var rows [][]any
	seen := make(map[string]bool)
	for _, category := range categories {
		for _, item := range category.Items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			rows = append(rows, []any{
				restaurantID,
				item.ID,
				category.ID,
				category.Name,
				len(rows),
				item.Name,
				item.Description,
				item.Price,
				item.Image,
				item.Veg,
				item.Bestseller,
				item.Rating,
			})
		}
	}
	return rows
}

func (r *MenuItemRepository) ReplaceMenu(ctx context.Context, restaurantID string, categories []models.MenuCategory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM menu_items WHERE restaurant_id = $1", restaurantID); err != nil {
		return err
	}

	rows := menuRows(restaurantID, categories)
	if len(rows) > 0 {
		_, err = tx.CopyFrom(ctx, pgx.Identifier{"menu_items"}, menuItemColumns, pgx.CopyFromRows(rows))
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *MenuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuCategory, error) {
	query := `
        SELECT category_id, category_name, id, name, description, price,
               image, veg, bestseller, rating
        FROM menu_items
        WHERE restaurant_id = $1
        ORDER BY position
    `
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.MenuCategory
	index := make(map[string]int)
	for rows.Next() {
		var categoryID, categoryName string
		var item models.MenuItem
		err := rows.Scan(
			&categoryID,
			&categoryName,
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Image,
			&item.Veg,
			&item.Bestseller,
			&item.Rating,
		)
		if err != nil {
			return nil, err
		}
		i, ok := index[categoryID]
		if !ok {
			i = len(categories)
			index[categoryID] = i
			categories = append(categories, models.MenuCategory{ID: categoryID, Name: categoryName})
		}
		categories[i].Items = append(categories[i].Items, item)
	}
	return categories, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM menu_items")
	return err
}
