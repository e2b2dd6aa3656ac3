package models

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

// DraftItem is one cart line flattened into the shape POST /orders expects.
type DraftItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// OrderDraft is the checkout payload. It is assembled once from the session
// cart plus the customer's contact details and never mutated after Submit.
type OrderDraft struct {
	CustomerName        string      `json:"customer_name" binding:"required"`
	CustomerPhone       string      `json:"customer_phone" binding:"required"`
	CustomerEmail       string      `json:"customer_email,omitempty"`
	OrderType           OrderType   `json:"order_type" binding:"required"`
	DeliveryAddress     string      `json:"delivery_address,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Items               []DraftItem `json:"items"`
}
