package company

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyNameExists  = errors.New("company already exists")
	ErrInvalidCompanyName = errors.New("company name cannot be empty")
)
