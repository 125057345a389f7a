package models

import "errors"

var (
	ErrInvalidCountryName = errors.New("invalid country name")
	ErrInvalidPopulation  = errors.New("population cannot be negative")
	ErrInvalidLetter      = errors.New("letter must be a single printable character")

	ErrEmptyDataset          = errors.New("no countries available")
	ErrRepositoryUnavailable = errors.New("country repository unavailable")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrUnknownDataSource               = errors.New("unknown data source")

	ErrRecordNotFound = errors.New("record not found")
)
