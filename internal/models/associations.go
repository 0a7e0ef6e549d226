package models

// Join tables for the N-N relationships. Composite primary keys, one index
// per column, and cascading deletes so removing an owner removes its rows.

type UserHability struct {
	UserID     uint `gorm:"column:user_id;primaryKey;index:idx_user_habilities_user"`
	HabilityID uint `gorm:"column:hability_id;primaryKey;index:idx_user_habilities_hability"`

	User     User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Hability Hability `gorm:"foreignKey:HabilityID;constraint:OnDelete:CASCADE"`
}

func (UserHability) TableName() string { return "User_Habilities" }

type UserProject struct {
	UserID    uint `gorm:"column:user_id;primaryKey;index:idx_user_projects_user"`
	ProjectID uint `gorm:"column:project_id;primaryKey;index:idx_user_projects_project"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (UserProject) TableName() string { return "User_Projects" }

type ProjectHability struct {
	ProjectID  uint `gorm:"column:project_id;primaryKey;index:idx_project_habilities_project"`
	HabilityID uint `gorm:"column:hability_id;primaryKey;index:idx_project_habilities_hability"`

	Project  Project  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Hability Hability `gorm:"foreignKey:HabilityID;constraint:OnDelete:CASCADE"`
}

func (ProjectHability) TableName() string { return "Project_Habilities" }
