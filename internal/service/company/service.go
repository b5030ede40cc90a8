package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentreach/outreach-backend-go/internal/domain/company"
	"github.com/talentreach/outreach-backend-go/internal/pkg/database"
	"github.com/talentreach/outreach-backend-go/internal/pkg/validator"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepository,
	}
}

// List implements company.CompanyService. Companies come back ordered by
// name ascending, for directory display.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, found := range companies {
		responses = append(responses, company.ToResponse(found))
	}
	return responses, nil
}

// Create implements company.CompanyService: the direct operator create,
// which rejects duplicates instead of resolving them.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return company.CompanyResponse{}, validator.ValidationErrors{{
			Field:   "name",
			Message: "Company name is required",
		}}
	}

	_, err := c.CompanyRepository.GetByName(ctx, name)
	if err == nil {
		return company.CompanyResponse{}, company.ErrCompanyNameExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return company.CompanyResponse{}, fmt.Errorf("failed to get company by name: %w", err)
	}

	created, err := c.CompanyRepository.Create(ctx, company.Company{
		Name:        name,
		ProfileLink: req.ProfileLink,
	})
	if err != nil {
		// Lost the race between the lookup and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return company.CompanyResponse{}, company.ErrCompanyNameExists
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	return company.ToResponse(created), nil
}

// FindOrCreate implements company.CompanyService. The returned company is
// the single canonical row for the trimmed name; the supplied profileLink
// only applies when a new company is created.
func (c *CompanyServiceImpl) FindOrCreate(ctx context.Context, name, profileLink string) (company.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return company.Company{}, validator.ValidationErrors{{
			Field:   "companyName",
			Message: "Company name is required",
		}}
	}

	resolved, _, err := c.CompanyRepository.FindOrCreate(ctx, name, profileLink)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to resolve company %q: %w", name, err)
	}
	return resolved, nil
}
