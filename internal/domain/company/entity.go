package company

import "time"

type Company struct {
	ID          string
	Name        string
	ProfileLink string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
