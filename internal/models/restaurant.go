package models

// Restaurant is the flattened listing shape rendered by restaurant cards.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Cuisine      []string `json:"cuisine"`
	Rating       float64  `json:"rating"`
	DeliveryTime int      `json:"deliveryTime"`
	PriceForTwo  int      `json:"priceForTwo"`
	Discount     string   `json:"discount,omitempty"`
	Address      string   `json:"address,omitempty"`
}

// HasDiscount reports whether the restaurant advertises an offer.
func (r Restaurant) HasDiscount() bool {
	return r.Discount != ""
}

// RestaurantDetail is everything the detail page needs for one restaurant.
type RestaurantDetail struct {
	Restaurant  Restaurant     `json:"restaurant"`
	Description string         `json:"description,omitempty"`
	Offers      []string       `json:"offers"`
	Menu        []MenuCategory `json:"menu"`
	Source      string         `json:"source"`
	Notice      string         `json:"notice,omitempty"`
}

// Page is one slice of the restaurant listing.
type Page struct {
	Items   []Restaurant `json:"items"`
	Page    int          `json:"page"`
	HasMore bool         `json:"hasMore"`
	Source  string       `json:"source"`
	Notice  string       `json:"notice,omitempty"`
}
