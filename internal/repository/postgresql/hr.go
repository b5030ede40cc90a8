package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talentreach/outreach-backend-go/internal/domain/hr"
	"github.com/talentreach/outreach-backend-go/internal/pkg/database"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) hr.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

const recordColumns = `id, company_id, company_name, company_profile_link,
		hr_name, hr_profile_link, hr_email, hr_phone, active, created_at, updated_at`

const recordJoinedColumns = `r.id, r.company_id, r.company_name, r.company_profile_link,
		r.hr_name, r.hr_profile_link, r.hr_email, r.hr_phone, r.active, r.created_at, r.updated_at,
		c.id, c.name, c.profile_link`

func scanRecord(row pgx.Row) (hr.Record, error) {
	var r hr.Record
	err := row.Scan(
		&r.ID, &r.CompanyID, &r.CompanyName, &r.CompanyProfileLink,
		&r.HRName, &r.HRProfileLink, &r.HREmail, &r.HRPhone,
		&r.Active, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// likeEscaper makes a user-supplied filter safe inside an ILIKE pattern:
// %, _ and \ are matched literally, never as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanRecordWithCompany(row pgx.Row) (hr.RecordWithCompany, error) {
	var r hr.RecordWithCompany
	err := row.Scan(
		&r.ID, &r.CompanyID, &r.CompanyName, &r.CompanyProfileLink,
		&r.HRName, &r.HRProfileLink, &r.HREmail, &r.HRPhone,
		&r.Active, &r.CreatedAt, &r.UpdatedAt,
		&r.Company.ID, &r.Company.Name, &r.Company.ProfileLink,
	)
	return r, err
}

// GetByID implements hr.RecordRepository.
func (r *recordRepositoryImpl) GetByID(ctx context.Context, id string) (hr.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM hr_records
		WHERE id = $1
	`

	return scanRecord(q.QueryRow(ctx, query, id))
}

// GetWithCompany implements hr.RecordRepository.
func (r *recordRepositoryImpl) GetWithCompany(ctx context.Context, id string) (hr.RecordWithCompany, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordJoinedColumns + `
		FROM hr_records r
		JOIN companies c ON c.id = r.company_id
		WHERE r.id = $1
	`

	return scanRecordWithCompany(q.QueryRow(ctx, query, id))
}

// List implements hr.RecordRepository. Records come back newest first;
// company_id wins over the substring filter when both are set.
func (r *recordRepositoryImpl) List(ctx context.Context, filter hr.ListFilter) ([]hr.RecordWithCompany, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordJoinedColumns + `
		FROM hr_records r
		JOIN companies c ON c.id = r.company_id
	`
	args := []interface{}{}

	switch {
	case filter.CompanyID != "":
		query += ` WHERE r.company_id = $1`
		args = append(args, filter.CompanyID)
	case filter.CompanyName != "":
		query += ` WHERE r.company_name ILIKE '%' || $1 || '%'`
		args = append(args, likeEscaper.Replace(filter.CompanyName))
	}
	// Secondary id ordering keeps results stable when timestamps tie.
	query += ` ORDER BY r.created_at DESC, r.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list HR records: %w", err)
	}
	defer rows.Close()

	records := []hr.RecordWithCompany{}
	for rows.Next() {
		found, err := scanRecordWithCompany(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, found)
	}
	return records, rows.Err()
}

// Create implements hr.RecordRepository.
func (r *recordRepositoryImpl) Create(ctx context.Context, newRecord hr.Record) (hr.Record, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return hr.Record{}, fmt.Errorf("failed to generate record id: %w", err)
	}

	query := `
		INSERT INTO hr_records (id, company_id, company_name, company_profile_link,
			hr_name, hr_profile_link, hr_email, hr_phone, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + recordColumns

	return scanRecord(q.QueryRow(ctx, query,
		id.String(), newRecord.CompanyID, newRecord.CompanyName, newRecord.CompanyProfileLink,
		newRecord.HRName, newRecord.HRProfileLink, newRecord.HREmail, newRecord.HRPhone,
		newRecord.Active,
	))
}

// Update implements hr.RecordRepository with a dynamic SET clause built
// from the non-nil fields.
func (r *recordRepositoryImpl) Update(ctx context.Context, id string, updates hr.RecordUpdate) error {
	q := GetQuerier(ctx, r.db)

	fields := make(map[string]interface{})

	if updates.CompanyID != nil {
		fields["company_id"] = *updates.CompanyID
	}
	if updates.CompanyName != nil {
		fields["company_name"] = *updates.CompanyName
	}
	if updates.CompanyProfileLink != nil {
		fields["company_profile_link"] = *updates.CompanyProfileLink
	}
	if updates.HRName != nil {
		fields["hr_name"] = *updates.HRName
	}
	if updates.HRProfileLink != nil {
		fields["hr_profile_link"] = *updates.HRProfileLink
	}
	if updates.HREmail != nil {
		fields["hr_email"] = *updates.HREmail
	}
	if updates.HRPhone != nil {
		fields["hr_phone"] = *updates.HRPhone
	}
	if updates.Active != nil {
		fields["active"] = *updates.Active
	}

	// Always bump updated_at, even when the payload carried no fields.
	fields["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	i := 1
	for col, val := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE hr_records SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return err
	}
	return nil
}

// ToggleActive implements hr.RecordRepository: flips the active flag and
// nothing else.
func (r *recordRepositoryImpl) ToggleActive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE hr_records
		SET active = NOT active, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	return q.QueryRow(ctx, query, id).Scan(&updatedID)
}
