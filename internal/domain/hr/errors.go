package hr

import "errors"

var (
	ErrRecordNotFound = errors.New("HR record not found")
)
