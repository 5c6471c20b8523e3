package enums

import (
	"fmt"
	"strings"
)

// BloodGroup is the set of values printable on an ID card.
type BloodGroup string

const (
	BloodGroupAPos    BloodGroup = "A+"
	BloodGroupANeg    BloodGroup = "A-"
	BloodGroupBPos    BloodGroup = "B+"
	BloodGroupBNeg    BloodGroup = "B-"
	BloodGroupOPos    BloodGroup = "O+"
	BloodGroupONeg    BloodGroup = "O-"
	BloodGroupABPos   BloodGroup = "AB+"
	BloodGroupABNeg   BloodGroup = "AB-"
	BloodGroupUnknown BloodGroup = "UNKNOWN"
)

var validBloodGroups = []BloodGroup{
	BloodGroupAPos,
	BloodGroupANeg,
	BloodGroupBPos,
	BloodGroupBNeg,
	BloodGroupOPos,
	BloodGroupONeg,
	BloodGroupABPos,
	BloodGroupABNeg,
	BloodGroupUnknown,
}

func (b BloodGroup) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BloodGroup.
func (b BloodGroup) IsValid() bool {
	for _, candidate := range validBloodGroups {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBloodGroup converts raw input into a BloodGroup, upper-casing first.
func ParseBloodGroup(value string) (BloodGroup, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	for _, candidate := range validBloodGroups {
		if string(candidate) == upper {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid blood group %q", value)
}
