package user

import "time"

type Role string

const (
	RoleCitizen    Role = "citizen"
	RoleDepartment Role = "department"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleDepartment, RoleAdmin:
		return true
	}
	return false
}

// CanManageReports reports whether the role may change report status.
func (r Role) CanManageReports() bool {
	return r == RoleDepartment || r == RoleAdmin
}

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:100;not null"`
	Email          string    `json:"email" gorm:"size:200;not null;uniqueIndex"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	Role           Role      `json:"role" gorm:"size:20;not null;default:'citizen'"`
	Ward           *string   `json:"ward" gorm:"size:100"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID   uint
	Role Role
}
