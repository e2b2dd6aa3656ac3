package models

// MenuItem is catalog data served by the upstream order service. The
// storefront never mutates it; the cart copies name, category label and
// price at add time.
type MenuItem struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"category_id"`
	CategoryLabel string  `json:"category_label"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url,omitempty"`
	Available     bool    `json:"available"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}
