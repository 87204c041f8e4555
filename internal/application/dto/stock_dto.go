package dto

import "time"

// StockUpdateRequest body para POST /stock/update.
type StockUpdateRequest struct {
	SKU      string `json:"sku" validate:"required,max=64"`
	Quantity int    `json:"quantity"`
}

// StockRow fila de stock de un técnico (GET /stock/mine).
type StockRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockOverviewRow fila del resumen de oficina (GET /stock/overview).
type StockOverviewRow struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// StockReportLine línea del informe PDF de stock (oficina).
type StockReportLine struct {
	TechnicianName  string
	TechnicianEmail string
	SKU             string
	ItemName        string
	Quantity        int
}
