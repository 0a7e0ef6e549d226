package services

import "errors"

// User-facing errors. The messages are surfaced verbatim by the terminal
// UI, hence the pt-BR texts.
var (
	ErrUserAlreadyExists  = errors.New("Usuário já existe")
	ErrInvalidCredentials = errors.New("Credenciais inválidas.")
	ErrUserNotFound       = errors.New("Usuário não encontrado.")
	ErrProjectNotFound    = errors.New("Projeto não encontrado.")
)
