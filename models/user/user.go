package user

import (
	"time"

	"transvert-logistics/constants"
)

// User is a local account. Staff and superadmin flags drive the role-based
// panel redirects after login.
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string  `gorm:"type:varchar(150);not null;unique" json:"username"`
	Email        *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	IsStaff      bool    `gorm:"type:bool;default:false" json:"is_staff"`
	IsSuperuser  bool    `gorm:"type:bool;default:false" json:"is_superuser"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Role returns the role name used for panel redirects and token claims.
func (u User) Role() string {
	switch {
	case u.IsSuperuser:
		return constants.RoleSuperadmin
	case u.IsStaff:
		return constants.RoleStaff
	default:
		return constants.RoleCustomer
	}
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "users"
}
