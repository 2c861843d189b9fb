package models

// Product is a catalog entry.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// InStock reports whether at least qty units are available.
func (p *Product) InStock(qty int) bool {
	return qty > 0 && p.Stock >= qty
}
