package dto

// ErrorResponse represents a standardized error response for the API.
// Quiz clients only look at ok and msg; code carries the domain error code.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"msg,omitempty"`
	Code    int    `json:"code,omitempty"`
}
