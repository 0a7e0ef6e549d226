package repository

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidPage is returned by FindPaginated for page < 1. The
// with-relations pagination wrappers clamp instead of failing; this is the
// low-level primitive that does not.
var ErrInvalidPage = errors.New("page must be >= 1")

// Entity is what the generic repository needs from a model: its surrogate
// key (zero means not yet persisted) and the allow-list of persistable
// columns. Relationship fields are absent from Columns by construction, so
// they can never end up in an INSERT or UPDATE.
type Entity interface {
	GetID() uint
	Columns() []string
}

// Repository is the table-agnostic CRUD layer shared by every entity type.
type Repository[T any, P interface {
	*T
	Entity
}] struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRepository[T any, P interface {
	*T
	Entity
}](db *gorm.DB, logger *zap.Logger) *Repository[T, P] {
	return &Repository[T, P]{db: db, logger: logger}
}

func (r *Repository[T, P]) DB() *gorm.DB { return r.db }

// Save inserts when the entity has no id yet, assigning the generated id
// back onto it, and updates every allow-listed column otherwise. An update
// that touches zero rows is a warning, not an error: the row vanished or
// nothing changed.
func (r *Repository[T, P]) Save(entity P) (P, error) {
	var none P

	if entity.GetID() == 0 {
		tx := r.db.Select(entity.Columns()).Omit(clause.Associations).Create(entity)
		if tx.Error != nil {
			r.logger.Error("failed to insert row", zap.Error(tx.Error))
			return none, fmt.Errorf("insert: %w", tx.Error)
		}
		return entity, nil
	}

	tx := r.db.Model(entity).Select(entity.Columns()).Omit(clause.Associations).Updates(entity)
	if tx.Error != nil {
		r.logger.Error("failed to update row", zap.Uint("id", entity.GetID()), zap.Error(tx.Error))
		return none, fmt.Errorf("update: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		r.logger.Warn("update affected no rows", zap.Uint("id", entity.GetID()))
	}

	return entity, nil
}

// GetByID returns (nil, nil) when no row matches.
func (r *Repository[T, P]) GetByID(id uint) (P, error) {
	var entity T
	var none P

	err := r.db.First(&entity, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return none, nil
	}
	if err != nil {
		return none, err
	}

	return P(&entity), nil
}

func (r *Repository[T, P]) FindAll() ([]T, error) {
	entities := []T{}

	if err := r.db.Find(&entities).Error; err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *Repository[T, P]) FindPaginated(page, perPage int) ([]T, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	entities := []T{}
	offset := (page - 1) * perPage

	if err := r.db.Limit(perPage).Offset(offset).Find(&entities).Error; err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *Repository[T, P]) Count() (int64, error) {
	var total int64

	if err := r.db.Model(new(T)).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// Delete reports whether a row was actually removed. Storage errors are
// downgraded to false: deletions are best-effort from the caller's side.
func (r *Repository[T, P]) Delete(id uint) bool {
	tx := r.db.Delete(new(T), id)

	if tx.Error != nil {
		r.logger.Error("failed to delete row", zap.Uint("id", id), zap.Error(tx.Error))
		return false
	}

	return tx.RowsAffected > 0
}
