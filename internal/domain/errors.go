package domain

import "errors"

var (
	ErrInvalidRate          = errors.New("invalid gst rate")
	ErrMissingGSTIN         = errors.New("gstin is required")
	ErrMalformedGSTIN       = errors.New("invalid gstin format")
	ErrUnknownStateCode     = errors.New("invalid state code in gstin")
	ErrUnknownSection       = errors.New("invalid tds section")
	ErrUnknownTCSSection    = errors.New("invalid tcs section")
	ErrInvalidQuarter       = errors.New("invalid quarter")
	ErrInvalidPeriod        = errors.New("invalid return period")
	ErrInvalidFinancialYear = errors.New("invalid financial year")
)
