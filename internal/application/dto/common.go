package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SubmitResultDTO resultado de un envío por lotes. Las líneas con campos
// vacíos se omiten sin error; Skipped las cuenta para que el cliente lo sepa.
type SubmitResultDTO struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
