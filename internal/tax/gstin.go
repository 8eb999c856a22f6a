package tax

import (
	"regexp"

	"bahikhata/internal/domain"
)

// GSTIN layout: 2-digit state code, 10-character PAN, entity code,
// literal 'Z', checksum character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// PANPattern is the structural pattern for a 10-character PAN.
var PANPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// TANPattern is the structural pattern for a 10-character TAN.
var TANPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{5}[A-Z]$`)

// ValidateGSTIN checks a GSTIN structurally and verifies that its embedded
// state code exists in the GST state table. On success it returns the
// extracted 2-digit state code.
//
// The 15th checksum character is matched structurally but not verified
// against the mod-36 algorithm; callers needing checksum verification must
// layer it on top.
func ValidateGSTIN(gstin string) (string, error) {
	if gstin == "" {
		return "", domain.ErrMissingGSTIN
	}
	if !gstinPattern.MatchString(gstin) {
		return "", domain.ErrMalformedGSTIN
	}
	code := gstin[:2]
	if !KnownStateCode(code) {
		return "", domain.ErrUnknownStateCode
	}
	return code, nil
}

// ValidPAN reports whether pan matches the structural PAN pattern.
func ValidPAN(pan string) bool {
	return PANPattern.MatchString(pan)
}
