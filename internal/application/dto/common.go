package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AckResponse acuse de recibo de una acción que no se persiste (toast del cliente).
type AckResponse struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}
