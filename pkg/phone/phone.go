package phone

import (
	"strings"

	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed when a number carries no country prefix.
const DefaultRegion = "IN"

// Normalize parses a phone number and returns its E.164 form. Numbers without
// a leading + are interpreted in the default region.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "phone number is required")
	}

	parsed, err := phonenumbers.Parse(trimmed, DefaultRegion)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid phone number")
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid phone number")
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
