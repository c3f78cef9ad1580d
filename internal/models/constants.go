package models

const (
	SourceLive = "live"
	SourceMock = "mock"

	FilterAll          = "all"
	FilterFastDelivery = "fast-delivery"
	FilterOffers       = "offers"
	FilterTopRated     = "top-rated"
	FilterVeg          = "veg"
	FilterPrice        = "price"

	// upstream card type tags
	RestaurantTypeKey = "type.googleapis.com/swiggy.presentation.food.v2.Restaurant"
	MenuItemTypeKey   = "type.googleapis.com/swiggy.presentation.food.v2.ItemCategory"

	DefaultRestaurantName = "Unknown Restaurant"
	DefaultDeliveryTime   = 30
	DefaultPriceForTwo    = 300
	DefaultMenuItemName   = "Unnamed Item"
	NoOffersPlaceholder   = "No offers available right now"

	PlaceholderImageURL = "https://www.searchenginejournal.com/wp-content/uploads/2024/02/404-error-page-examples-65ccb7d85bc41-sej-1440x810.png"

	FastDeliveryMaxMinutes = 30
	TopRatedMinRating      = 4.2
)
