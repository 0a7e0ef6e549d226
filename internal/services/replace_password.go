package services

import (
	"go.uber.org/zap"

	"github.com/colabora-dev/colabora/internal/auth"
	"github.com/colabora-dev/colabora/internal/models"
	"github.com/colabora-dev/colabora/internal/validators"
)

type ReplacePasswordUsers interface {
	ExistsByID(id uint) (bool, error)
	GetByIDWithAllRelations(id uint) (*models.User, error)
	Save(user *models.User) (*models.User, error)
}

type ReplacePasswordUseCase struct {
	users     ReplacePasswordUsers
	passwords *auth.PasswordManager
	logger    *zap.Logger
}

func NewReplacePasswordUseCase(users ReplacePasswordUsers, passwords *auth.PasswordManager, logger *zap.Logger) *ReplacePasswordUseCase {
	return &ReplacePasswordUseCase{users: users, passwords: passwords, logger: logger}
}

// Execute re-hashes the user's password under a fresh salt. The user is
// fetched with every relation so the save that follows re-syncs — and
// therefore preserves — the habilities and project subscriptions.
func (uc *ReplacePasswordUseCase) Execute(id uint, newPassword string) error {
	exists, err := uc.users.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	user, err := uc.users.GetByIDWithAllRelations(id)
	if err != nil {
		return err
	}
	if user == nil {
		// Vanished between the existence check and the fetch.
		return ErrUserNotFound
	}

	if err := validators.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, salt, err := uc.passwords.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hash
	user.Salt = salt

	if _, err := uc.users.Save(user); err != nil {
		return err
	}

	uc.logger.Info("password replaced", zap.Uint("id", id))

	return nil
}
