package models

import "time"

// Order is the upstream-owned record created from a submitted draft. The
// storefront never mutates it; each poll replaces the snapshot wholesale.
type Order struct {
	OrderNumber         string      `json:"order_number"`
	Status              OrderStatus `json:"status"`
	OrderType           OrderType   `json:"order_type"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhone       string      `json:"customer_phone"`
	DeliveryAddress     string      `json:"delivery_address,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Subtotal            float64     `json:"subtotal"`
	Discount            float64     `json:"discount"`
	Total               float64     `json:"total"`
	EstimatedTime       int         `json:"estimated_time"`
	Items               []OrderItem `json:"items"`
	CreatedAt           time.Time   `json:"created_at"`
}

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"`
}
