package models

type Project struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string `gorm:"column:name;not null;index:idx_project_name"`
	Description    string `gorm:"column:description"`
	OrganizationID *uint  `gorm:"column:organization_id;index:idx_project_organization_id"`

	// A project belongs to at most one organization. Declared so the
	// migrator emits the foreign key; reads fill it through the batch
	// relation loader, never through implicit preloading.
	Organization *Organization `gorm:"foreignKey:OrganizationID"`

	// Required skills, persisted only through the join-table synchronizer.
	Habilities []Hability `gorm:"-"`
}

func (Project) TableName() string { return "Project" }

func (p *Project) GetID() uint { return p.ID }

func (p *Project) IsNew() bool { return p.ID == 0 }

func (Project) Columns() []string {
	return []string{"name", "description", "organization_id"}
}
