package handler

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error string `json:"error"`
}
