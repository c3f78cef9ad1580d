package postgres

import (
	"context"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

type RestaurantRepository struct {
	db DB
}

func NewRestaurantRepository(db DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) BulkUpsert(ctx context.Context, restaurants []models.Restaurant) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO restaurants (
            id, name, image, cuisines, rating, delivery_time,
            price_for_two, discount, address, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            image = EXCLUDED.image,
            cuisines = EXCLUDED.cuisines,
            rating = EXCLUDED.rating,
            delivery_time = EXCLUDED.delivery_time,
            price_for_two = EXCLUDED.price_for_two,
            discount = EXCLUDED.discount,
            address = CASE WHEN EXCLUDED.address = '' THEN restaurants.address ELSE EXCLUDED.address END,
            updated_at = now()
    `
	for _, restaurant := range restaurants {
		cuisines := restaurant.Cuisine
		if cuisines == nil {
			cuisines = []string{}
		}
		_, err = tx.Exec(ctx, query,
			restaurant.ID,
			restaurant.Name,
			restaurant.Image,
			cuisines,
			restaurant.Rating,
			restaurant.DeliveryTime,
			restaurant.PriceForTwo,
			restaurant.Discount,
			restaurant.Address,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *RestaurantRepository) GetAll(ctx context.Context) (map[string]models.Restaurant, error) {
	query := `
        SELECT id, name, image, cuisines, rating, delivery_time,
               price_for_two, discount, address
        FROM restaurants
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make(map[string]models.Restaurant)
	for rows.Next() {
		var restaurant models.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Image,
			&restaurant.Cuisine,
			&restaurant.Rating,
			&restaurant.DeliveryTime,
			&restaurant.PriceForTwo,
			&restaurant.Discount,
			&restaurant.Address,
		)
		if err != nil {
			return nil, err
		}
		restaurants[restaurant.ID] = restaurant
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM restaurants")
	return err
}
