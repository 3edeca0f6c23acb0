package entity

import (
	"gorm.io/gorm"
)

// User is a staff account. Only admins exist today (seeded at boot);
// customers order without an account.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
