package repository

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colabora-dev/colabora/internal/models"
)

type HabilityRepository struct {
	*Repository[models.Hability, *models.Hability]
	db *gorm.DB
}

func NewHabilityRepository(db *gorm.DB, logger *zap.Logger) *HabilityRepository {
	return &HabilityRepository{
		Repository: NewRepository[models.Hability, *models.Hability](db, logger),
		db:         db,
	}
}

func (r *HabilityRepository) FindByName(name string) (*models.Hability, error) {
	var hability models.Hability

	err := r.db.Where("name = ?", name).First(&hability).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &hability, nil
}

// FindByNames resolves a list of skill names to persisted habilities in one
// query. Unknown names are simply absent from the result.
func (r *HabilityRepository) FindByNames(names []string) ([]models.Hability, error) {
	habilities := []models.Hability{}

	if len(names) == 0 {
		return habilities, nil
	}

	if err := r.db.Where("name IN ?", names).Find(&habilities).Error; err != nil {
		return nil, err
	}

	return habilities, nil
}

// GroupedByDomain returns every hability keyed by its free-text domain, the
// shape the listing screens consume.
func (r *HabilityRepository) GroupedByDomain() (map[string][]models.Hability, error) {
	habilities, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	grouped := map[string][]models.Hability{}
	for _, h := range habilities {
		grouped[h.Domain] = append(grouped[h.Domain], h)
	}

	return grouped, nil
}
