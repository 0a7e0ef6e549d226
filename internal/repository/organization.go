package repository

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colabora-dev/colabora/internal/models"
)

type OrganizationRepository struct {
	*Repository[models.Organization, *models.Organization]
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB, logger *zap.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		Repository: NewRepository[models.Organization, *models.Organization](db, logger),
		db:         db,
	}
}

func (r *OrganizationRepository) FindByIDs(ids []uint) ([]models.Organization, error) {
	orgs := []models.Organization{}

	if len(ids) == 0 {
		return orgs, nil
	}

	if err := r.db.Where("id IN ?", ids).Find(&orgs).Error; err != nil {
		return nil, err
	}

	return orgs, nil
}

func (r *OrganizationRepository) FindByName(name string) (*models.Organization, error) {
	var org models.Organization

	err := r.db.Where("name = ?", name).First(&org).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}
