package user

import (
	"regexp"
	"strings"

	"mysterybox-storefront/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.New("invalid email format")
	ErrInvalidRole     = errs.New("invalid role")
	ErrPasswordTooWeak = errs.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errs.New("password must be at most 72 bytes")
)

const (
	minPasswordLen = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLen = 72
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is stored lower-cased so staff logins are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	switch {
	case len(s) < minPasswordLen:
		return Password{}, ErrPasswordTooWeak
	case len(s) > maxPasswordLen:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }
