package validators

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrPasswordMissing        = errors.New("Senha não informada.")
	ErrPasswordTooShort       = errors.New("Senha deve ter no mínimo 8 caracteres.")
	ErrPasswordWithoutDigit   = errors.New("Senha deve conter pelo menos um número.")
	ErrPasswordWithoutUpper   = errors.New("Senha deve conter pelo menos uma letra maiúscula.")
	ErrPasswordWithoutSpecial = errors.New("Senha deve conter pelo menos um caractere especial.")
)

// ASCII punctuation accepted as "special" characters.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordMissing
	}
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasDigit, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(punctuation, r):
			hasSpecial = true
		}
	}

	if !hasDigit {
		return ErrPasswordWithoutDigit
	}
	if !hasUpper {
		return ErrPasswordWithoutUpper
	}
	if !hasSpecial {
		return ErrPasswordWithoutSpecial
	}
	return nil
}
