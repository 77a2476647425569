// models/user.go
package models

import (
	"gorm.io/gorm"
)

const (
	RoleGuest = "guest"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model

	FullName string `json:"fullName"`
	Email    string `json:"email" gorm:"size:150;uniqueIndex"`
	Password string `json:"-" gorm:"size:255"`
	Phone    string `json:"phone" gorm:"size:50"`
	Role     string `json:"role" gorm:"size:20;default:'guest'"`
}

type UserBasic struct {
	ID       uint `gorm:"primaryKey"`
	FullName string
	Email    string
}
