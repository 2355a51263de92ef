package lead

import "errors"

var (
	// ErrProfileFrozen is returned when mutating a profile after submission
	ErrProfileFrozen = errors.New("lead profile is frozen after submission")

	// ErrMissingCompany is returned when the company name is missing
	ErrMissingCompany = errors.New("company is required")

	// ErrMissingName is returned when first or last name is missing
	ErrMissingName = errors.New("first and last name are required")

	// ErrMissingEmail is returned when the email address is missing
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidEmail is returned when the email address is malformed
	ErrInvalidEmail = errors.New("email address is not valid")

	// ErrEmptySelection is returned when advancing past a multi-select step
	// with nothing selected
	ErrEmptySelection = errors.New("at least one option must be selected")

	// ErrConsentRequired is returned when submitting without consent
	ErrConsentRequired = errors.New("consent is required before submission")
)
