package lead

import (
	"regexp"
	"strings"
)

// emailRE accepts the basic local@domain.tld shape. Anything stricter rejects
// real addresses; anything looser lets whitespace and bare domains through.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// ValidEmail reports whether s looks like a deliverable email address.
func ValidEmail(s string) bool {
	return emailRE.MatchString(strings.TrimSpace(s))
}

// ContactInput carries the contact-step form fields.
type ContactInput struct {
	Company   string `json:"company"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Validate checks required presence and email format. Phone is optional.
func (in ContactInput) Validate() error {
	if strings.TrimSpace(in.Company) == "" {
		return ErrMissingCompany
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrMissingEmail
	}
	if !ValidEmail(in.Email) {
		return ErrInvalidEmail
	}
	return nil
}
