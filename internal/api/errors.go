package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error is returned for every non-2xx API response.
type Error struct {
	StatusCode int
	Message    string
	// Errors holds field validation messages for 422 responses.
	Errors map[string][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s (status %d)", message, e.StatusCode)
	}

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var details []string
	for _, field := range fields {
		details = append(details, e.Errors[field]...)
	}

	return fmt.Sprintf("%s: %s", message, strings.Join(details, " "))
}

// isStatus checks if the error is an API error with one of the given status codes.
func isStatus(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error indicates missing or invalid credentials.
func IsUnauthorized(err error) bool {
	return isStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}

// IsValidation checks if the API rejected the request payload.
func IsValidation(err error) bool {
	return isStatus(err, http.StatusUnprocessableEntity)
}

// IsInaccessible checks if a resource is gone or no longer visible to the
// authenticated user.
func IsInaccessible(err error) bool {
	return isStatus(err, http.StatusNotFound, http.StatusForbidden)
}
