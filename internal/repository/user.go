package repository

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/colabora-dev/colabora/internal/models"
)

type UserRepository struct {
	*Repository[models.User, *models.User]
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserRepository(db *gorm.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		Repository: NewRepository[models.User, *models.User](db, logger),
		db:         db,
		logger:     logger,
	}
}

// Save persists the user's base row and then reconciles both join tables,
// so the habilities and projects carried on the entity always reflect what
// is stored. A sync failure is fatal to the whole save.
func (r *UserRepository) Save(user *models.User) (*models.User, error) {
	habilities := user.Habilities
	projects := user.Projects

	saved, err := r.Repository.Save(user)
	if err != nil {
		return nil, err
	}

	if err := r.SyncHabilities(saved.ID, habilities); err != nil {
		return nil, err
	}
	if err := r.SyncProjects(saved.ID, projects); err != nil {
		return nil, err
	}

	return saved, nil
}

// SyncHabilities replaces the User_Habilities rows for the user with one
// row per related hability that has an id. Unsaved habilities are skipped;
// they cannot be related until persisted.
func (r *UserRepository) SyncHabilities(userID uint, habilities []models.Hability) error {
	rows := make([]models.UserHability, 0, len(habilities))
	for _, h := range habilities {
		if h.IsNew() {
			continue
		}
		rows = append(rows, models.UserHability{UserID: userID, HabilityID: h.ID})
	}

	if err := syncJoinRows(r.db, "user_id", userID, rows); err != nil {
		r.logger.Error("failed to sync user habilities", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	return nil
}

// SyncProjects replaces the User_Projects rows for the user.
func (r *UserRepository) SyncProjects(userID uint, projects []models.Project) error {
	rows := make([]models.UserProject, 0, len(projects))
	for _, p := range projects {
		if p.IsNew() {
			continue
		}
		rows = append(rows, models.UserProject{UserID: userID, ProjectID: p.ID})
	}

	if err := syncJoinRows(r.db, "user_id", userID, rows); err != nil {
		r.logger.Error("failed to sync user projects", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	return nil
}

// AddHability inserts a single join row. Best-effort: failures (including
// duplicates) report false.
func (r *UserRepository) AddHability(userID, habilityID uint) bool {
	row := models.UserHability{UserID: userID, HabilityID: habilityID}

	if err := r.db.Omit(clause.Associations).Create(&row).Error; err != nil {
		r.logger.Error("failed to relate user and hability",
			zap.Uint("user_id", userID), zap.Uint("hability_id", habilityID), zap.Error(err))
		return false
	}

	return true
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	err := r.db.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) ExistsByID(id uint) (bool, error) {
	var count int64

	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error

	return count > 0, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64

	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error

	return count > 0, err
}

// HabilitiesForUser loads every hability of the user in one joined query.
func (r *UserRepository) HabilitiesForUser(userID uint) ([]models.Hability, error) {
	habilities := []models.Hability{}

	err := r.db.Raw(`
		SELECT h.* FROM "Hability" h
		JOIN "User_Habilities" uh ON h.id = uh.hability_id
		WHERE uh.user_id = ?`, userID).Scan(&habilities).Error

	if err != nil {
		return nil, err
	}

	return habilities, nil
}

// ProjectsForUser loads every subscribed project of the user in one joined
// query.
func (r *UserRepository) ProjectsForUser(userID uint) ([]models.Project, error) {
	projects := []models.Project{}

	err := r.db.Raw(`
		SELECT p.* FROM "Project" p
		JOIN "User_Projects" up ON p.id = up.project_id
		WHERE up.user_id = ?`, userID).Scan(&projects).Error

	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *UserRepository) GetByIDWithHabilities(userID uint) (*models.User, error) {
	user, err := r.GetByID(userID)
	if err != nil || user == nil {
		return user, err
	}

	user.Habilities, err = r.HabilitiesForUser(userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetByIDWithAllRelations(userID uint) (*models.User, error) {
	user, err := r.GetByIDWithHabilities(userID)
	if err != nil || user == nil {
		return user, err
	}

	user.Projects, err = r.ProjectsForUser(userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
