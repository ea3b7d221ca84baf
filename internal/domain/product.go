package domain

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int       `json:"stock"`
	SellerID    *int64    `json:"sellerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductSales pairs a product with the total units it has sold.
type ProductSales struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"unitsSold"`
}
