package dto

// ErrorResponseDTO is the shared JSON error body.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not found"`
}

// HealthResponseDTO is returned by /health.
type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
}
