package enums

import "fmt"

// AttachmentKind labels what a stored binary object is used for.
type AttachmentKind string

const (
	AttachmentKindPhoto     AttachmentKind = "photo"
	AttachmentKindSignature AttachmentKind = "signature"
)

var validAttachmentKinds = []AttachmentKind{
	AttachmentKindPhoto,
	AttachmentKindSignature,
}

func (k AttachmentKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known AttachmentKind.
func (k AttachmentKind) IsValid() bool {
	for _, candidate := range validAttachmentKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseAttachmentKind converts raw input into an AttachmentKind.
func ParseAttachmentKind(value string) (AttachmentKind, error) {
	for _, candidate := range validAttachmentKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid attachment kind %q", value)
}
