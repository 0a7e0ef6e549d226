package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/colabora-dev/colabora/internal/auth"
	"github.com/colabora-dev/colabora/internal/models"
)

type LoginUsers interface {
	GetByEmail(email string) (*models.User, error)
}

type LoginUseCase struct {
	users     LoginUsers
	passwords *auth.PasswordManager
	logger    *zap.Logger
}

func NewLoginUseCase(users LoginUsers, passwords *auth.PasswordManager, logger *zap.Logger) *LoginUseCase {
	return &LoginUseCase{users: users, passwords: passwords, logger: logger}
}

// Execute authenticates by email and password. Unknown email and wrong
// password answer the same error so callers cannot enumerate accounts.
func (uc *LoginUseCase) Execute(email, password string) (*models.User, error) {
	user, err := uc.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	if user == nil || !uc.passwords.CheckPassword(password, user) {
		return nil, ErrInvalidCredentials
	}

	uc.logger.Info("user logged in", zap.Uint("id", user.ID))

	return user, nil
}
