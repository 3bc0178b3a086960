package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Timesheet errors
	case errors.Is(err, overtime.ErrEmptyFile),
		errors.Is(err, overtime.ErrMissingColumn),
		errors.Is(err, overtime.ErrUnsupportedFormat),
		errors.Is(err, overtime.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrTooManyRecords):
		RequestEntityTooLarge(w, err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
