package repository

import "errors"

var (
	// ErrConsentNotFound is returned when no consent record exists for a
	// (venue, phone) pair. Absence is a policy signal, not a failure.
	ErrConsentNotFound = errors.New("consent record not found")

	// ErrNoActiveNumber is returned when a venue has no active outbound
	// number for the requested provider.
	ErrNoActiveNumber = errors.New("no active phone number for venue and provider")

	// ErrActiveNumberExists is returned when assigning a number would
	// violate the one-active-number-per-(venue, provider) constraint.
	ErrActiveNumberExists = errors.New("an active phone number already exists for venue and provider")

	// ErrNumberNotActive is returned when releasing a number that is not
	// currently active.
	ErrNumberNotActive = errors.New("phone number is not active")
)
