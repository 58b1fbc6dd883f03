package auth

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user is inactive")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only checks the email shape. The password is compared against
// the stored hash as-is so the strength rule never leaks whether an account exists.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
