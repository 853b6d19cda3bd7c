package utils

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
