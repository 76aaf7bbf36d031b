// Package models defines the domain types used throughout the application.
package models

import (
	"errors"
	"regexp"
)

// e164Regex matches a leading +, a first digit 1-9 and up to 15 digits total.
var e164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var ErrInvalidPhoneFormat = errors.New("phone number must be in E.164 format (e.g. +1234567890)")

// PhoneNumber is a validated phone number in E.164 format. The zero value is
// not a valid number; use NewPhoneNumber to construct one.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw against the E.164 format and returns the
// typed value. Empty and whitespace-only input is rejected by the pattern.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if !e164Regex.MatchString(raw) {
		return PhoneNumber{}, ErrInvalidPhoneFormat
	}
	return PhoneNumber{value: raw}, nil
}

// TryNewPhoneNumber is the non-failing variant for validation contexts.
func TryNewPhoneNumber(raw string) (PhoneNumber, bool) {
	p, err := NewPhoneNumber(raw)
	return p, err == nil
}

// IsValidE164 reports whether raw is a well-formed E.164 phone number.
func IsValidE164(raw string) bool {
	return e164Regex.MatchString(raw)
}

func (p PhoneNumber) String() string {
	return p.value
}

// IsZero reports whether p is the zero (unvalidated) value.
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}

// Equal compares two phone numbers by string value.
func (p PhoneNumber) Equal(other PhoneNumber) bool {
	return p.value == other.value
}

// Less orders phone numbers by string value.
func (p PhoneNumber) Less(other PhoneNumber) bool {
	return p.value < other.value
}
