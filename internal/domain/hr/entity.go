package hr

import "time"

// Record is a recruiter contact scoped to one company. CompanyName and
// CompanyProfileLink are denormalized copies taken at write time; they may
// drift from the owning company's current values when the record carries
// its own override.
type Record struct {
	ID                 string
	CompanyID          string
	CompanyName        string
	CompanyProfileLink string
	HRName             string
	HRProfileLink      string
	HREmail            string
	HRPhone            string
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CompanyRef is the owning company projection joined onto a record for
// display.
type CompanyRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProfileLink string `json:"profileLink"`
}

type RecordWithCompany struct {
	Record
	Company CompanyRef
}
