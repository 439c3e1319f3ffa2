package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a monthly spending limit for one category.
type Budget struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID `gorm:"index"`
	Category   Category  `json:"-"`
	CategoryID uuid.UUID
	Month      int             `gorm:"index:budget_month_year"`
	Year       int             `gorm:"index:budget_month_year"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Month < 1 || b.Month > 12 {
		return ErrBudgetMonthInvalid
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return CheckCategoryVisible(tx, toSave.CategoryID, toSave.UserID)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		toSave := tx.Statement.Dest.(Budget)
		return CheckCategoryVisible(tx, toSave.CategoryID, b.UserID)
	}

	return nil
}
