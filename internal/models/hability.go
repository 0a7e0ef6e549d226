package models

// Hability is a skill/competency tag. Domain is a free-text category used
// to group skills in listings.
type Hability struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;not null;uniqueIndex:idx_hability_name"`
	Description string `gorm:"column:description"`
	Domain      string `gorm:"column:domain"`
}

func (Hability) TableName() string { return "Hability" }

func (h *Hability) GetID() uint { return h.ID }

func (h *Hability) IsNew() bool { return h.ID == 0 }

func (Hability) Columns() []string {
	return []string{"name", "description", "domain"}
}

// Equal compares habilities by name, not by id. The name is the natural
// identity of a skill: two instances with the same name are the same skill
// even before either has been persisted. This diverges from the id-based
// identity used by every other entity and exists so that seed loading can
// deduplicate skills across domains.
func (h *Hability) Equal(other *Hability) bool {
	if other == nil {
		return false
	}
	return h.Name == other.Name
}
