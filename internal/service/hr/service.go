package hr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/talentreach/outreach-backend-go/internal/domain/company"
	"github.com/talentreach/outreach-backend-go/internal/domain/hr"
	"github.com/talentreach/outreach-backend-go/internal/pkg/database"
	"github.com/talentreach/outreach-backend-go/internal/repository/postgresql"
)

type RecordServiceImpl struct {
	db *database.DB
	hr.RecordRepository
	companyService company.CompanyService
}

func NewRecordService(db *database.DB, recordRepository hr.RecordRepository, companyService company.CompanyService) hr.RecordService {
	return &RecordServiceImpl{
		db:               db,
		RecordRepository: recordRepository,
		companyService:   companyService,
	}
}

// Get implements hr.RecordService.
func (s *RecordServiceImpl) Get(ctx context.Context, id string) (hr.RecordResponse, error) {
	return s.respondWithCompany(ctx, id)
}

// List implements hr.RecordService.
func (s *RecordServiceImpl) List(ctx context.Context, filter hr.ListFilter) ([]hr.RecordResponse, error) {
	records, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list HR records: %w", err)
	}

	responses := make([]hr.RecordResponse, 0, len(records))
	for _, found := range records {
		responses = append(responses, hr.ToResponse(found))
	}
	return responses, nil
}

// Create implements hr.RecordService. The owning company is resolved via
// find-or-create, and companyId/companyName on the record always come from
// the resolved row, never the raw input.
func (s *RecordServiceImpl) Create(ctx context.Context, req hr.CreateRecordRequest) (hr.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return hr.RecordResponse{}, err
	}

	var created hr.Record
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		owner, err := s.companyService.FindOrCreate(txCtx, req.CompanyName, req.CompanyProfileLink)
		if err != nil {
			return err
		}

		// Caller-supplied link wins when present; otherwise fall back to
		// the company's own.
		profileLink := req.CompanyProfileLink
		if profileLink == "" {
			profileLink = owner.ProfileLink
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		created, err = s.RecordRepository.Create(txCtx, hr.Record{
			CompanyID:          owner.ID,
			CompanyName:        owner.Name,
			CompanyProfileLink: profileLink,
			HRName:             strings.TrimSpace(req.HRName),
			HRProfileLink:      req.HRProfileLink,
			HREmail:            strings.ToLower(strings.TrimSpace(req.HREmail)),
			HRPhone:            strings.TrimSpace(req.HRPhone),
			Active:             active,
		})
		if err != nil {
			return fmt.Errorf("failed to create HR record: %w", err)
		}
		return nil
	})
	if err != nil {
		return hr.RecordResponse{}, err
	}

	return s.respondWithCompany(ctx, created.ID)
}

// Update implements hr.RecordService. Only fields present in the payload
// are touched; a changed company name rebinds the record to the resolved
// company exactly as on create.
func (s *RecordServiceImpl) Update(ctx context.Context, id string, req hr.UpdateRecordRequest) (hr.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return hr.RecordResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.RecordRepository.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return hr.ErrRecordNotFound
			}
			return fmt.Errorf("failed to get HR record: %w", err)
		}

		var updates hr.RecordUpdate

		if req.CompanyName != nil {
			newName := strings.TrimSpace(*req.CompanyName)
			if newName != "" && newName != current.CompanyName {
				link := ""
				if req.CompanyProfileLink != nil {
					link = *req.CompanyProfileLink
				}
				owner, err := s.companyService.FindOrCreate(txCtx, newName, link)
				if err != nil {
					return err
				}
				updates.CompanyID = &owner.ID
				updates.CompanyName = &owner.Name
			}
		}

		if req.CompanyProfileLink != nil {
			updates.CompanyProfileLink = req.CompanyProfileLink
		}
		if req.HRName != nil {
			trimmed := strings.TrimSpace(*req.HRName)
			updates.HRName = &trimmed
		}
		if req.HRProfileLink != nil {
			updates.HRProfileLink = req.HRProfileLink
		}
		if req.HREmail != nil {
			lowered := strings.ToLower(strings.TrimSpace(*req.HREmail))
			updates.HREmail = &lowered
		}
		if req.HRPhone != nil {
			trimmed := strings.TrimSpace(*req.HRPhone)
			updates.HRPhone = &trimmed
		}
		if req.Active != nil {
			updates.Active = req.Active
		}

		if err := s.RecordRepository.Update(txCtx, id, updates); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return hr.ErrRecordNotFound
			}
			return fmt.Errorf("failed to update HR record: %w", err)
		}
		return nil
	})
	if err != nil {
		return hr.RecordResponse{}, err
	}

	return s.respondWithCompany(ctx, id)
}

// ToggleActive implements hr.RecordService: flips the active flag, no
// other field changes.
func (s *RecordServiceImpl) ToggleActive(ctx context.Context, id string) (hr.RecordResponse, error) {
	if err := s.RecordRepository.ToggleActive(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hr.RecordResponse{}, hr.ErrRecordNotFound
		}
		return hr.RecordResponse{}, fmt.Errorf("failed to toggle HR record: %w", err)
	}

	return s.respondWithCompany(ctx, id)
}

func (s *RecordServiceImpl) respondWithCompany(ctx context.Context, id string) (hr.RecordResponse, error) {
	joined, err := s.RecordRepository.GetWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hr.RecordResponse{}, hr.ErrRecordNotFound
		}
		return hr.RecordResponse{}, fmt.Errorf("failed to read back HR record: %w", err)
	}
	return hr.ToResponse(joined), nil
}
