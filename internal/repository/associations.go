package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// syncJoinRows makes a join table exactly reflect the given rows for one
// owner: a single transaction deletes every row for the owner and batch
// inserts the replacements. Any failure rolls the whole thing back, so the
// table is never left transiently empty.
func syncJoinRows[J any](db *gorm.DB, ownerColumn string, ownerID uint, rows []J) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(ownerColumn+" = ?", ownerID).Delete(new(J)).Error; err != nil {
			return err
		}

		if len(rows) == 0 {
			return nil
		}

		return tx.Omit(clause.Associations).Create(&rows).Error
	})
}
