package response

import (
	"errors"
	"net/http"

	"github.com/attendify/attendify-backend-go/internal/domain/report"
	"github.com/attendify/attendify-backend-go/internal/pkg/validator"
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
	// Report domain errors: the caller posted a stats bundle that cannot be
	// decoded.
	case errors.Is(err, report.ErrInvalidStats),
		errors.Is(err, report.ErrInvalidSummary),
		errors.Is(err, report.ErrInvalidDetails),
		errors.Is(err, report.ErrInvalidDailyStatus),
		errors.Is(err, report.ErrStatsMapping):
		BadRequest(w, err.Error(), nil)

	// Default: surface the originating message, per the single-item endpoint
	// contract.
	default:
		InternalServerError(w, err.Error())
	}
}
