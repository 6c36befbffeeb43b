package dto

// ErrorResponse cuerpo de error HTTP.
// Fields detalla, campo por campo, las reglas de validación incumplidas.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
