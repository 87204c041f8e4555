package dto

import "time"

// DefaultMaxItems límite de artículos por sincronización si no se indica.
const (
	DefaultMaxItems = 200
	MaxMaxItems     = 1000
)

// ScrapeRequest body para POST /inventory/scrape.
type ScrapeRequest struct {
	URL      string `json:"url" validate:"required,http_url"`
	MaxItems *int   `json:"max_items,omitempty" validate:"omitempty,min=1,max=1000"`
}

// Limit devuelve max_items con el valor por defecto aplicado.
func (r ScrapeRequest) Limit() int {
	if r.MaxItems == nil {
		return DefaultMaxItems
	}
	return *r.MaxItems
}

// ScrapeResponse resultado de la sincronización.
type ScrapeResponse struct {
	Status   string `json:"status"`
	Upserted int    `json:"upserted"`
}

// InventoryItemResponse artículo del catálogo.
type InventoryItemResponse struct {
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Supplier    string    `json:"supplier"`
	Price       *string   `json:"price,omitempty"`
	Active      bool      `json:"active"`
	UpdatedAt   time.Time `json:"updated_at"`
}
