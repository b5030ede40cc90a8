package hr

import "context"

// ListFilter narrows List results. CompanyID takes precedence over
// CompanyName when both are supplied; CompanyName is a case-insensitive
// substring match against the denormalized company name.
type ListFilter struct {
	CompanyID   string
	CompanyName string
}

// RecordUpdate carries the normalized field overwrites for a partial
// update. Nil fields are left untouched.
type RecordUpdate struct {
	CompanyID          *string
	CompanyName        *string
	CompanyProfileLink *string
	HRName             *string
	HRProfileLink      *string
	HREmail            *string
	HRPhone            *string
	Active             *bool
}

type RecordRepository interface {
	GetByID(ctx context.Context, id string) (Record, error)
	GetWithCompany(ctx context.Context, id string) (RecordWithCompany, error)
	List(ctx context.Context, filter ListFilter) ([]RecordWithCompany, error)
	Create(ctx context.Context, newRecord Record) (Record, error)
	Update(ctx context.Context, id string, updates RecordUpdate) error
	ToggleActive(ctx context.Context, id string) error
}
