package models

// CartLine is one distinct menu item in a session cart. Name, category
// label and unit price are snapshots taken when the item was added; the
// cart does not re-price when the catalog changes.
type CartLine struct {
	ItemID        string  `json:"item_id"`
	Name          string  `json:"name"`
	CategoryLabel string  `json:"category_label"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
