package entity

import "time"

// TechnicianStock cantidad de un SKU en poder de un técnico.
// Un registro por (UserID, SKU); Quantity nunca es negativa.
type TechnicianStock struct {
	ID        string
	UserID    string
	SKU       string
	Quantity  int
	UpdatedAt time.Time
}

// ClampQuantity recorta cantidades negativas a 0.
func ClampQuantity(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
