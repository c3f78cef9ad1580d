package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/xitongsys/parquet-go/schema"
)

const (
	TopicRestaurantSnapshots = "restaurant_snapshots"
	TopicMenuItemSnapshots   = "menu_item_snapshots"
	TopicCartEvents          = "cart_events"

	EventRestaurantSeen = "RestaurantSeen"
	EventMenuItemSeen   = "MenuItemSeen"
	EventCartUpdated    = "CartUpdated"
	EventCartItemRemove = "CartItemRemoved"
)

type RestaurantSnapshotEvent struct {
	Timestamp    int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType    string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID string  `json:"restaurantId" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name         string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Image        string  `json:"image" parquet:"name=image,type=BYTE_ARRAY,convertedtype=UTF8"`
	Cuisine      string  `json:"cuisine" parquet:"name=cuisine,type=BYTE_ARRAY,convertedtype=UTF8"`
	Rating       float64 `json:"rating" parquet:"name=rating,type=DOUBLE"`
	DeliveryTime int32   `json:"deliveryTime" parquet:"name=deliveryTime,type=INT32"`
	PriceForTwo  int32   `json:"priceForTwo" parquet:"name=priceForTwo,type=INT32"`
	Discount     string  `json:"discount,omitempty" parquet:"name=discount,type=BYTE_ARRAY,convertedtype=UTF8"`
	Latitude     float64 `json:"latitude" parquet:"name=latitude,type=DOUBLE"`
	Longitude    float64 `json:"longitude" parquet:"name=longitude,type=DOUBLE"`
	City         string  `json:"city,omitempty" parquet:"name=city,type=BYTE_ARRAY,convertedtype=UTF8"`
	Source       string  `json:"source" parquet:"name=source,type=BYTE_ARRAY,convertedtype=UTF8"`
	Page         int32   `json:"page" parquet:"name=page,type=INT32"`
}

type MenuItemSnapshotEvent struct {
	Timestamp    int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType    string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID string  `json:"restaurantId" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	CategoryID   string  `json:"categoryId" parquet:"name=categoryId,type=BYTE_ARRAY,convertedtype=UTF8"`
	CategoryName string  `json:"categoryName" parquet:"name=categoryName,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemID       string  `json:"itemId" parquet:"name=itemId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name         string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Price        int32   `json:"price" parquet:"name=price,type=INT32"`
	Veg          bool    `json:"veg" parquet:"name=veg,type=BOOLEAN"`
	Bestseller   bool    `json:"bestseller" parquet:"name=bestseller,type=BOOLEAN"`
	Rating       float64 `json:"rating" parquet:"name=rating,type=DOUBLE"`
	Source       string  `json:"source" parquet:"name=source,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type CartEvent struct {
	Timestamp int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	EventID   string `json:"eventId" parquet:"name=eventId,type=BYTE_ARRAY,convertedtype=UTF8"`
	CartID    string `json:"cartId" parquet:"name=cartId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemID    string `json:"itemId" parquet:"name=itemId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemName  string `json:"itemName" parquet:"name=itemName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Price     int32  `json:"price" parquet:"name=price,type=INT32"`
	Quantity  int32  `json:"quantity" parquet:"name=quantity,type=INT32"`
	ItemCount int32  `json:"itemCount" parquet:"name=itemCount,type=INT32"`
	Subtotal  int64  `json:"subtotal" parquet:"name=subtotal,type=INT64"`
}

func NewRestaurantSnapshot(r models.Restaurant, loc models.Location, page models.Page, at time.Time) RestaurantSnapshotEvent {
	return RestaurantSnapshotEvent{
		Timestamp:    at.Unix(),
		EventType:    EventRestaurantSeen,
		RestaurantID: r.ID,
		Name:         r.Name,
		Image:        r.Image,
		Cuisine:      strings.Join(r.Cuisine, ","),
		Rating:       r.Rating,
		DeliveryTime: int32(r.DeliveryTime),
		PriceForTwo:  int32(r.PriceForTwo),
		Discount:     r.Discount,
		Latitude:     loc.Lat,
		Longitude:    loc.Lon,
		City:         loc.City,
		Source:       page.Source,
		Page:         int32(page.Page),
	}
}

func NewMenuItemSnapshots(detail models.RestaurantDetail, at time.Time) []MenuItemSnapshotEvent {
	var events []MenuItemSnapshotEvent
	for _, category := range detail.Menu {
		for _, item := range category.Items {
			events = append(events, MenuItemSnapshotEvent{
				Timestamp:    at.Unix(),
				EventType:    EventMenuItemSeen,
				RestaurantID: detail.Restaurant.ID,
				CategoryID:   category.ID,
				CategoryName: category.Name,
				ItemID:       item.ID,
				Name:         item.Name,
				Price:        int32(item.Price),
				Veg:          item.Veg,
				Bestseller:   item.Bestseller,
				Rating:       item.Rating,
				Source:       detail.Source,
			})
		}
	}
	return events
}

// GetSchema returns the parquet schema for a topic.
func GetSchema(topic string) (*schema.SchemaHandler, error) {
	switch topic {
	case TopicRestaurantSnapshots:
		return schema.NewSchemaHandlerFromStruct(new(RestaurantSnapshotEvent))
	case TopicMenuItemSnapshots:
		return schema.NewSchemaHandlerFromStruct(new(MenuItemSnapshotEvent))
	case TopicCartEvents:
		return schema.NewSchemaHandlerFromStruct(new(CartEvent))
	}
	return nil, fmt.Errorf("unknown topic: %s", topic)
}

// newRecord returns a pointer to the zero record for topic, ready for
// json.Unmarshal.
func newRecord(topic string) (any, error) {
	switch topic {
	case TopicRestaurantSnapshots:
		return new(RestaurantSnapshotEvent), nil
	case TopicMenuItemSnapshots:
		return new(MenuItemSnapshotEvent), nil
	case TopicCartEvents:
		return new(CartEvent), nil
	}
	return nil, fmt.Errorf("unknown topic: %s", topic)
}
