package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talentreach/outreach-backend-go/internal/domain/company"
	"github.com/talentreach/outreach-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = "id, name, profile_link, created_at, updated_at"

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.ProfileLink, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE id = $1
	`

	return scanCompany(q.QueryRow(ctx, query, id))
}

// GetByName implements company.CompanyRepository. The match is exact and
// case-sensitive on the trimmed name.
func (c *companyRepositoryImpl) GetByName(ctx context.Context, name string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE name = $1
	`

	return scanCompany(q.QueryRow(ctx, query, name))
}

// List implements company.CompanyRepository. The C collation pins a
// byte-wise sort (uppercase before lowercase) regardless of the
// database's default collation.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		ORDER BY name COLLATE "C" ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []company.Company{}
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, found)
	}
	return companies, rows.Err()
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	id, err := uuid.NewV7()
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to generate company id: %w", err)
	}

	query := `
		INSERT INTO companies (id, name, profile_link)
		VALUES ($1, $2, $3)
		RETURNING ` + companyColumns

	return scanCompany(q.QueryRow(ctx, query, id.String(), newCompany.Name, newCompany.ProfileLink))
}

// FindOrCreate implements company.CompanyRepository as a single
// insert-if-absent statement. When the name already exists the insert is
// skipped and the existing row is re-read, so a concurrent create of the
// same name never surfaces a unique violation to the caller.
func (c *companyRepositoryImpl) FindOrCreate(ctx context.Context, name, profileLink string) (company.Company, bool, error) {
	q := GetQuerier(ctx, c.db)

	id, err := uuid.NewV7()
	if err != nil {
		return company.Company{}, false, fmt.Errorf("failed to generate company id: %w", err)
	}

	query := `
		INSERT INTO companies (id, name, profile_link)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query, id.String(), name, profileLink))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, false, fmt.Errorf("failed to insert company %q: %w", name, err)
	}

	// Insert skipped: the company already exists, existing data wins.
	existing, err := c.GetByName(ctx, name)
	if err != nil {
		return company.Company{}, false, fmt.Errorf("failed to re-read company %q: %w", name, err)
	}
	return existing, false, nil
}
