package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/colabora-dev/colabora/internal/models"
)

type UpdateUsers interface {
	ExistsByEmail(email string) (bool, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDWithAllRelations(id uint) (*models.User, error)
	Save(user *models.User) (*models.User, error)
}

type UpdateUserUseCase struct {
	users  UpdateUsers
	logger *zap.Logger
}

func NewUpdateUserUseCase(users UpdateUsers, logger *zap.Logger) *UpdateUserUseCase {
	return &UpdateUserUseCase{users: users, logger: logger}
}

// Execute merges the given fields onto the user looked up by email. The
// user is loaded with relations first so saving does not clear them.
func (uc *UpdateUserUseCase) Execute(email string, update UserUpdate) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user, err = uc.users.GetByIDWithAllRelations(user.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	update.ApplyTo(user)

	return uc.users.Save(user)
}
