package models

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string `gorm:"column:email;not null;uniqueIndex:idx_user_email"`
	Password  string `gorm:"column:password;not null"` // hex-encoded scrypt hash
	Salt      string `gorm:"column:salt;not null"`     // hex-encoded 16-byte salt
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	BirthDate string `gorm:"column:birth_date"` // ISO-8601 date
	Phone     string `gorm:"column:phone"`
	Role      Role   `gorm:"column:role;not null;default:USER"`

	// Relationships, filled by the relation loaders and persisted only
	// through the join-table synchronizers. Never mapped to columns.
	Habilities []Hability `gorm:"-"`
	Projects   []Project  `gorm:"-"`
}

func (User) TableName() string { return "User" }

func (u *User) GetID() uint { return u.ID }

func (u *User) IsNew() bool { return u.ID == 0 }

// Columns is the allow-list of persistable columns. The generic repository
// builds every INSERT and UPDATE from this list, so relationship fields
// cannot leak into SQL.
func (User) Columns() []string {
	return []string{"email", "password", "salt", "first_name", "last_name", "birth_date", "phone", "role"}
}
