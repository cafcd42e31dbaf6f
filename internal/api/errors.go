package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rosymaple/dadjoke/internal/api/shared"
	"github.com/rosymaple/dadjoke/internal/generation"
	"github.com/rosymaple/dadjoke/internal/service"
)

// ErrInvalidRequestBody is returned when the request body is not valid JSON.
var ErrInvalidRequestBody = errors.New("invalid request body")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors

	switch {
	// Bad request errors
	case errors.Is(err, ErrInvalidRequestBody),
		errors.As(err, &verrs),
		errors.Is(err, service.ErrNoJokeFound),
		errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest

	// Personalization failures and anything unexpected
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, ErrInvalidRequestBody):
		return "Invalid request format"

	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)

	case errors.Is(err, service.ErrNoJokeFound):
		return "No joke found. Please try a different keyword."

	case errors.Is(err, service.ErrInvalidRequest):
		return "Invalid joke request"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The joke could not be personalized because the content was blocked"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The language model returned an invalid response"

	default:
		var perr *generation.PersonalizationError
		if errors.As(err, &perr) {
			return "Failed to personalize joke"
		}
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending field.
func SanitizeValidationError(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "Validation error"
	}

	first := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the sanitized error response for err and logs the
// redacted details. A keyword without matches is logged at WARN so it shows
// up at the default log level.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ErrorOption
	if errors.Is(err, service.ErrNoJokeFound) {
		opts = append(opts, shared.WithWarnLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
