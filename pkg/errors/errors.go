package errors

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicateReport = errors.New("report already exists for this contract and reporter")
)
