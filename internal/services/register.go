package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/colabora-dev/colabora/internal/auth"
	"github.com/colabora-dev/colabora/internal/models"
	"github.com/colabora-dev/colabora/internal/validators"
)

// RegisterUsers is the slice of the user repository registration needs.
type RegisterUsers interface {
	ExistsByEmail(email string) (bool, error)
	Save(user *models.User) (*models.User, error)
}

type RegisterUseCase struct {
	users     RegisterUsers
	passwords *auth.PasswordManager
	logger    *zap.Logger
}

func NewRegisterUseCase(users RegisterUsers, passwords *auth.PasswordManager, logger *zap.Logger) *RegisterUseCase {
	return &RegisterUseCase{users: users, passwords: passwords, logger: logger}
}

// Execute creates a new account. The duplicate check runs before the format
// checks; validation failures and the duplicate conflict come back as the
// fixed user-facing errors, storage faults propagate.
func (uc *RegisterUseCase) Execute(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := uc.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	if err := validators.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validators.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, salt, err := uc.passwords.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Salt:     salt,
		Role:     models.RoleUser,
	}

	saved, err := uc.users.Save(user)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.Uint("id", saved.ID))

	return saved, nil
}
