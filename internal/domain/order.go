package domain

import "time"

type Order struct {
	ID         int64       `json:"id"`
	BuyerID    int64       `json:"buyerId"`
	TotalCents int64       `json:"totalCents"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	ProductID   int64  `json:"productId"`
	Quantity    int    `json:"quantity"`
	ProductName string `json:"productName,omitempty"`
	UnitCents   int64  `json:"unitCents,omitempty"`
}
