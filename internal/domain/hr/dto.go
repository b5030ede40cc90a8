package hr

import (
	"context"
	"time"

	"github.com/talentreach/outreach-backend-go/internal/pkg/validator"
)

type RecordService interface {
	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	Update(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	ToggleActive(ctx context.Context, id string) (RecordResponse, error)
}

type RecordResponse struct {
	ID                 string     `json:"id"`
	CompanyID          string     `json:"companyId"`
	Company            CompanyRef `json:"company"`
	CompanyName        string     `json:"companyName"`
	CompanyProfileLink string     `json:"companyProfileLink"`
	HRName             string     `json:"hrName"`
	HRProfileLink      string     `json:"hrProfileLink"`
	HREmail            string     `json:"hrEmail"`
	HRPhone            string     `json:"hrPhone"`
	Active             bool       `json:"active"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func ToResponse(r RecordWithCompany) RecordResponse {
	return RecordResponse{
		ID:                 r.ID,
		CompanyID:          r.CompanyID,
		Company:            r.Company,
		CompanyName:        r.CompanyName,
		CompanyProfileLink: r.CompanyProfileLink,
		HRName:             r.HRName,
		HRProfileLink:      r.HRProfileLink,
		HREmail:            r.HREmail,
		HRPhone:            r.HRPhone,
		Active:             r.Active,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type CreateRecordRequest struct {
	CompanyName        string `json:"companyName"`
	CompanyProfileLink string `json:"companyProfileLink"`
	HRName             string `json:"hrName"`
	HRProfileLink      string `json:"hrProfileLink"`
	HREmail            string `json:"hrEmail"`
	HRPhone            string `json:"hrPhone"`
	Active             *bool  `json:"active"`
}

// Validate checks the create payload and reports the first failure, in a
// fixed order: company name, HR name, email presence, email shape, phone
// shape.
func (r *CreateRecordRequest) Validate() error {
	if validator.IsEmpty(r.CompanyName) {
		return validator.ValidationErrors{{
			Field:   "companyName",
			Message: "Company name is required",
		}}
	}
	if validator.IsEmpty(r.HRName) {
		return validator.ValidationErrors{{
			Field:   "hrName",
			Message: "HR name is required",
		}}
	}
	if validator.IsEmpty(r.HREmail) {
		return validator.ValidationErrors{{
			Field:   "hrEmail",
			Message: "HR email is required",
		}}
	}
	if !validator.IsValidEmail(r.HREmail) {
		return validator.ValidationErrors{{
			Field:   "hrEmail",
			Message: "Invalid email format",
		}}
	}
	if !validator.IsValidPhone(r.HRPhone) {
		return validator.ValidationErrors{{
			Field:   "hrPhone",
			Message: "Invalid phone number format",
		}}
	}
	return nil
}

// UpdateRecordRequest is a partial update: nil fields are left untouched,
// present fields overwrite the stored value.
type UpdateRecordRequest struct {
	CompanyName        *string `json:"companyName"`
	CompanyProfileLink *string `json:"companyProfileLink"`
	HRName             *string `json:"hrName"`
	HRProfileLink      *string `json:"hrProfileLink"`
	HREmail            *string `json:"hrEmail"`
	HRPhone            *string `json:"hrPhone"`
	Active             *bool   `json:"active"`
}

// Validate checks only the fields present in the payload. A present but
// empty phone passes trivially.
func (r *UpdateRecordRequest) Validate() error {
	if r.HREmail != nil && !validator.IsValidEmail(*r.HREmail) {
		return validator.ValidationErrors{{
			Field:   "hrEmail",
			Message: "Invalid email format",
		}}
	}
	if r.HRPhone != nil && !validator.IsValidPhone(*r.HRPhone) {
		return validator.ValidationErrors{{
			Field:   "hrPhone",
			Message: "Invalid phone number format",
		}}
	}
	return nil
}
