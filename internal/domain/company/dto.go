package company

import (
	"context"
	"time"

	"github.com/talentreach/outreach-backend-go/internal/pkg/validator"
)

type CompanyService interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	FindOrCreate(ctx context.Context, name, profileLink string) (Company, error)
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ProfileLink string    `json:"profileLink"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		ProfileLink: c.ProfileLink,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CreateCompanyRequest struct {
	Name        string `json:"name"`
	ProfileLink string `json:"profileLink"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Company name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
