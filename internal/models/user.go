package models

import (
	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin     = "admin"
	RoleAffiliate = "affiliate"
)

type User struct {
	gorm.Model
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;default:'affiliate'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
