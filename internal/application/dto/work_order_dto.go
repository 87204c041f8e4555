package dto

// RouteCompletionRequest payload del webhook de OptimoRoute.
type RouteCompletionRequest struct {
	OrderID         string `json:"order_id"`
	TechnicianEmail string `json:"technician_email,omitempty"`
	Status          string `json:"status"`
	CompletedAt     string `json:"completed_at,omitempty"`
}
