package models

type Organization struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:name;not null"`
	Description  string `gorm:"column:description"`
	ContactEmail string `gorm:"column:contact_email;unique"`
	ContactPhone string `gorm:"column:contact_phone"`
	Website      string `gorm:"column:website"`
}

func (Organization) TableName() string { return "Organization" }

func (o *Organization) GetID() uint { return o.ID }

func (o *Organization) IsNew() bool { return o.ID == 0 }

func (Organization) Columns() []string {
	return []string{"name", "description", "contact_email", "contact_phone", "website"}
}
