package dto

// ErrorResponse cuerpo de error HTTP: código estable + mensaje legible.
// El éxito lleva el payload tipado directamente, nunca ambos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EstadoResponse resultado de un toggle de estado.
type EstadoResponse struct {
	ID     string `json:"id"`
	Estado string `json:"estado"`
}
