package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"stayhub/internal/pkg/errs"
)

const (
	MinPasswordLength = 8
	MaxNameLength     = 150
	MaxPhoneLength    = 20
)

var (
	ErrInvalidEmail      = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrInvalidRole       = errs.Mark(errs.New("invalid role"), errs.ErrValidation)
	ErrPasswordTooWeak   = errs.Mark(errs.New("password must be at least 8 characters long"), errs.ErrValidation)
	ErrPasswordMismatch  = errs.Mark(errs.New("password fields didn't match"), errs.ErrValidation)
	ErrInvalidName       = errs.Mark(errs.New("first and last name are required and at most 150 characters"), errs.ErrValidation)
	ErrInvalidPhone      = errs.Mark(errs.New("invalid phone number"), errs.ErrValidation)
	ErrEmailAlreadyTaken = errs.Mark(errs.New("a user with this email already exists"), errs.ErrConflict)
	ErrUserNotFound      = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)
)

type Email struct {
	value string
}

// NewEmail normalizes to lower case so lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

// NewConfirmedPassword checks the confirmation before the strength rule.
func NewConfirmedPassword(s, confirm string) (Password, error) {
	if s != confirm {
		return Password{}, ErrPasswordMismatch
	}
	return NewPassword(s)
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return Name{}, ErrInvalidName
	}
	if utf8.RuneCountInString(first) > MaxNameLength || utf8.RuneCountInString(last) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{first: first, last: last}, nil
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }

func (n Name) Full() string {
	return strings.TrimSpace(n.first + " " + n.last)
}

// NewPhone returns nil for an empty input.
func NewPhone(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if !phoneRegex.MatchString(v) {
		return nil, ErrInvalidPhone
	}
	return &v, nil
}
