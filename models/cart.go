package models

// CartLine is one product in the cart. Name, price and image are snapshotted
// at add-time so totals stay stable even if the catalog changes afterwards.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// CartSummary is the full cart payload returned to the storefront.
type CartSummary struct {
	Items []CartLine `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

// AddCartItemRequest adds one unit of a catalog product to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"3"`
}

// UpdateCartItemRequest sets an absolute quantity. Zero or below removes
// the line, so the field is a pointer to distinguish 0 from "not sent".
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"2"`
}

// AddWishlistItemRequest saves a catalog product for later.
type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"3"`
}
