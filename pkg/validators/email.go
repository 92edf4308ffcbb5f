// Package validators contains the request schemas accepted by the API and the
// checks run on them before they reach the services
package validators

import (
	"errors"
	"regexp"
)

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailInvalid = errors.New("invalid email address provided")
)

// local@domain.tld, no whitespace and a single @
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if !emailRe.MatchString(e) {
		return ErrEmailInvalid
	}

	return nil
}
