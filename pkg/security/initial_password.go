package security

import "strings"

// InitialPassword derives the bootstrap credential mailed to a new candidate:
// first four lowercase letters of the name (right-padded with 'x') followed by
// the last four digits of the phone number (left-padded with '0'). The result
// is deliberately reproducible and is hashed before storage like any other
// password.
func InitialPassword(name, phone string) string {
	var letters strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			letters.WriteRune(r)
		}
	}
	first4 := letters.String()
	if len(first4) > 4 {
		first4 = first4[:4]
	}
	for len(first4) < 4 {
		first4 += "x"
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	last4 := digits.String()
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	for len(last4) < 4 {
		last4 = "0" + last4
	}

	return first4 + last4
}
