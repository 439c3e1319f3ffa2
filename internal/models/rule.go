package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rule is a user-defined categorization rule: transactions whose
// description or merchant contains the pattern are assigned the category.
// Higher priority rules are consulted first.
type Rule struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID `gorm:"index"`
	Pattern    string
	Category   Category `json:"-"`
	CategoryID uuid.UUID
	Priority   uint `gorm:"index"`
}

// BeforeSave trims the pattern and enforces its length bounds.
func (r *Rule) BeforeSave(_ *gorm.DB) error {
	r.Pattern = strings.TrimSpace(r.Pattern)

	if len(r.Pattern) < 1 || len(r.Pattern) > 100 {
		return ErrRulePatternLength
	}

	return nil
}

func (r *Rule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Rule)
	return CheckCategoryVisible(tx, toSave.CategoryID, toSave.UserID)
}

func (r *Rule) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		toSave := tx.Statement.Dest.(Rule)
		return CheckCategoryVisible(tx, toSave.CategoryID, r.UserID)
	}

	return nil
}
