package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrCityNotFound          = errors.New("city not found")
	ErrPOIDataUnavailable    = errors.New("poi data unavailable")
	ErrProviderNotConfigured = errors.New("provider not configured")
	ErrUpstreamUnavailable   = errors.New("upstream provider unavailable")
	ErrDatabaseError         = errors.New("database error")
)
