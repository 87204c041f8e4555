package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta mínima {status:"ok"}.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusOK respuesta de éxito estándar.
var StatusOK = StatusResponse{Status: "ok"}
