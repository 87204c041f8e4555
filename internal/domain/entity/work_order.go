package entity

import "time"

// Estados de una orden de trabajo (bon). Solo existe la transición open -> completed.
const (
	WorkOrderOpen      = "open"
	WorkOrderCompleted = "completed"
)

// WorkOrder orden de trabajo enlazada con OptimoRoute (clave externa OrderID).
type WorkOrder struct {
	OrderID         string
	TechnicianID    string
	TechnicianEmail string
	Status          string
	ExternalRef     string
	CompletedAt     string // RFC 3339 tal como llega del webhook, o la hora del servidor
	UpdatedAt       time.Time
}
