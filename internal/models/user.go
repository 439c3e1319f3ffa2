package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a registered user of the platform. All finance and risk
// resources are scoped to exactly one user.
type User struct {
	DefaultModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}
