// Package validation provides input-format validators for user-supplied fields.
package validation

import (
	"errors"
	"regexp"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]{2,}$`)
	urlRe   = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
)

// ValidateEmail checks email format.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("Please provide a valid email address")
	}
	return nil
}

// ValidatePassword enforces at least 8 characters with one uppercase letter,
// one lowercase letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("Password must contain an uppercase letter, a lowercase letter and a number")
	}
	return nil
}

// ValidateName allows letters and spaces, at least 2 characters.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return errors.New("Name must be at least 2 letters")
	}
	return nil
}

// ValidateURL checks URL format for profile links.
func ValidateURL(url string) error {
	if !urlRe.MatchString(url) {
		return errors.New("Please provide a valid URL")
	}
	return nil
}
