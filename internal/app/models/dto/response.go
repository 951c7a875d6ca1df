package dto

// Response is the generic wire envelope. Every body carries success; error
// is used for conflicts, credential failures and internal faults, message for
// not-found and validation outcomes, mirroring what the SPA expects.
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
	Errores []FieldError `json:"errores,omitempty"`
}

// FieldError is one failed validation rule on one field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewDataResponse wraps a created or updated record
func NewDataResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewMessageResponse wraps a success confirmation
func NewMessageResponse(message string) Response {
	return Response{Success: true, Message: message}
}

// NewErrorResponse wraps a user-facing error
func NewErrorResponse(message string) Response {
	return Response{Success: false, Error: message}
}

// NewNotFoundResponse wraps a not-found outcome
func NewNotFoundResponse(message string) Response {
	return Response{Success: false, Message: message}
}

// NewValidationResponse wraps the accumulated per-field failures
func NewValidationResponse(errores []FieldError) Response {
	return Response{Success: false, Message: "Falla de validacion", Errores: errores}
}
