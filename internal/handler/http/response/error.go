package response

import (
	"errors"
	"net/http"

	"github.com/talentreach/outreach-backend-go/internal/domain/auth"
	"github.com/talentreach/outreach-backend-go/internal/domain/company"
	"github.com/talentreach/outreach-backend-go/internal/domain/hr"
	"github.com/talentreach/outreach-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Validation and
// not-found errors carry a single-line message; anything unrecognized is
// an opaque 500.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		message := "Validation failed"
		if len(validationErrs) > 0 {
			message = validationErrs[0].Message
		}
		BadRequest(w, message)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNameExists):
		BadRequest(w, "Company already exists")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// HR record domain errors
	case errors.Is(err, hr.ErrRecordNotFound):
		NotFound(w, "HR record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
