package validators

import (
	"errors"
	"strings"
)

var (
	ErrEmailMissing    = errors.New("E-mail não informado.")
	ErrEmailWithoutAt  = errors.New(`E-mail deve conter "@".`)
	ErrEmailWithoutDot = errors.New(`E-mail deve conter ".".`)
)

func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailMissing
	}
	if !strings.Contains(email, "@") {
		return ErrEmailWithoutAt
	}
	if !strings.Contains(email, ".") {
		return ErrEmailWithoutDot
	}
	return nil
}
