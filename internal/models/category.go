package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a label for transactions, budgets, goals and rules.
// A category without a UserID is global: it is visible to all users, but
// cannot be modified by them.
type Category struct {
	DefaultModel
	UserID   *uuid.UUID `gorm:"index"` // nil marks a global category
	Name     string
	ParentID *uuid.UUID
	Icon     string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	// Ensure that the parent ID is nil and not a pointer to a nil UUID
	if c.ParentID != nil && *c.ParentID == uuid.Nil {
		c.ParentID = nil
	}

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if c.ParentID != nil {
		return tx.First(&Category{}, *c.ParentID).Error
	}

	return nil
}

// CheckCategoryVisible verifies that the category exists and is either
// global or owned by the user.
func CheckCategoryVisible(tx *gorm.DB, id uuid.UUID, userID uuid.UUID) error {
	var category Category
	err := tx.First(&category, id).Error
	if err != nil {
		return err
	}

	if category.UserID != nil && *category.UserID != userID {
		return ErrCategoryNotVisible
	}

	return nil
}
