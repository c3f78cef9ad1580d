package models

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int     `json:"price"` // whole currency units
	Image       string  `json:"image"`
	Veg         bool    `json:"veg"`
	Bestseller  bool    `json:"bestseller"`
	Rating      float64 `json:"rating"`
}

type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// CartItem is a menu item with the quantity currently in the cart.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
