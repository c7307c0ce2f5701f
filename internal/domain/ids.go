package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// IDLength is the length of generated identifiers.
	IDLength = 12

	MaxIDLength   = 50
	MaxTextLength = 500
	MaxNameLength = 100
)

var (
	idPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NewID returns a fresh URL-safe identifier of IDLength characters.
func NewID() (string, error) {
	return gonanoid.New(IDLength)
}

// IsValidID reports whether id is 1-50 characters of [a-zA-Z0-9_-].
func IsValidID(id string) bool {
	return id != "" && len(id) <= MaxIDLength && idPattern.MatchString(id)
}

// IsValidDateKey reports whether date has the YYYY-MM-DD digit grouping and
// names a real calendar date.
func IsValidDateKey(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(dateKeyLayout, date)
	return err == nil
}

// IsValidText reports whether text is non-blank and at most MaxTextLength characters.
func IsValidText(text string) bool {
	return strings.TrimSpace(text) != "" && utf8.RuneCountInString(text) <= MaxTextLength
}

// IsValidName reports whether name is non-blank and at most MaxNameLength characters.
func IsValidName(name string) bool {
	return strings.TrimSpace(name) != "" && utf8.RuneCountInString(name) <= MaxNameLength
}

// ValidateText returns a field error for an invalid todo text.
func ValidateText(field, text string) *FieldError {
	if strings.TrimSpace(text) == "" {
		return &FieldError{Field: field, Message: "required"}
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return &FieldError{Field: field, Message: "max 500 characters"}
	}
	return nil
}

// ValidateName returns a field error for an invalid tab or list name.
func ValidateName(field, name string) *FieldError {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: field, Message: "required"}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &FieldError{Field: field, Message: "max 100 characters"}
	}
	return nil
}

// ValidateID returns a field error for an identifier outside the id grammar.
func ValidateID(field, id string) *FieldError {
	if !IsValidID(id) {
		return &FieldError{Field: field, Message: "invalid id"}
	}
	return nil
}
