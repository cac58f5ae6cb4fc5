package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`    // errores por campo (validación)
	Available *int              `json:"available,omitempty"` // solo INSUFFICIENT_STOCK
}
