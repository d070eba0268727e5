package domain

import (
	"strings"
	"unicode/utf8"
)

// NormalizeTitle trims the title and enforces 1..MaxTitleLength runes.
func NormalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", NewValidationError("title", "is required")
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return "", NewValidationError("title", "must be at most %d characters", MaxTitleLength)
	}
	return t, nil
}

// NormalizeDescription trims the description; blank becomes nil.
func NormalizeDescription(desc *string) (*string, error) {
	if desc == nil {
		return nil, nil
	}
	d := strings.TrimSpace(*desc)
	if d == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(d) > MaxDescriptionLength {
		return nil, NewValidationError("description", "must be at most %d characters", MaxDescriptionLength)
	}
	return &d, nil
}
