package services

import (
	"errors"
	"strings"
)

// ErrRestaurantNotFound is returned when no restaurant matches the requested id
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ValidationError carries every problem found in a request, in check order
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
