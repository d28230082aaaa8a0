package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern is a deliberately loose check: local part, @, domain with a dot.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MaxNameLen is the maximum floor plan name length.
	MaxNameLen = 128
	// minPasswordLen is the minimum account password length.
	minPasswordLen = 8
)

// ValidateDocumentName checks that a floor plan name is present and within
// bounds. Leading/trailing whitespace does not count as presence.
func ValidateDocumentName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if len(trimmed) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}
	return nil
}

// ValidatePayload checks that a floor plan payload is present. The payload
// itself is opaque: an empty mapping is a valid (empty) plan, a nil mapping
// means the field was missing.
func ValidatePayload(payload map[string]any) error {
	if payload == nil {
		return fmt.Errorf("payload is required")
	}
	return nil
}

// ValidateEmail checks the account email format.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ValidatePassword checks minimum account password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	return nil
}
