package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles are a closed set; a join table is overkill for two values.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User model
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Email          string         `gorm:"size:255;not null;unique" json:"email"`
	HashedPassword []byte         `gorm:"not null" json:"-"`
	Role           string         `gorm:"size:32;not null;default:user" json:"role"`
	// BaseCurrency is the settlement currency transactions are normalized
	// into at creation time.
	BaseCurrency string        `gorm:"size:8;not null;default:USD" json:"baseCurrency"`
	Transactions []Transaction `json:"-"`
	Budgets      []Budget      `json:"-"`
	Goals        []Goal        `json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
