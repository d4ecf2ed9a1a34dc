package models

// ErrorResponse is the body returned for a single failure, e.g. {"error": "Restaurant not found"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a request fails validation
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// Error messages that form part of the public contract
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgInvalidRequestBody = "Invalid request body"

	MsgInvalidPizzaID      = "Invalid pizza_id: Pizza not found"
	MsgInvalidRestaurantID = "Invalid restaurant_id: Restaurant not found"
	MsgInvalidPrice        = "Price must be a positive number"
)

// NewErrorResponse creates a new error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a validation body, never serializing a null list
func NewValidationErrorResponse(errs []string) ValidationErrorResponse {
	if errs == nil {
		errs = []string{}
	}
	return ValidationErrorResponse{Errors: errs}
}
