package form

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailMalformed   = errors.New("email is malformed")
)

// localChars excludes every whitespace rune, not only the ASCII ones \s covers, and
// quoted local parts stop at line terminators.
const localChars = `[^<>()\[\]\\.,;:\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}@"]`

var emailPattern = regexp.MustCompile(
	`^((` + localChars + `+(\.` + localChars + `+)*)|("[^\n\r\x{2028}\x{2029}]+"))` +
		`@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// Validate reports why the credentials cannot be submitted yet, or nil if they can.
func Validate(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if !ValidEmail(email) {
		return ErrEmailMalformed
	}
	return nil
}

func IsValid(email, password string) bool {
	return Validate(email, password) == nil
}

// ValidEmail matches the lowercased address against the email syntax.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}
