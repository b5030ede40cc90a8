package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetByName(ctx context.Context, name string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	// FindOrCreate inserts the company if no company with the same name
	// exists, otherwise returns the existing row. The boolean reports
	// whether a new row was created. Atomic at the statement level, so a
	// concurrent insert of the same name resolves to the existing row.
	FindOrCreate(ctx context.Context, name, profileLink string) (Company, bool, error)
}
