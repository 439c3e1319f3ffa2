package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType describes the direction of a transaction. When the caller
// does not assert a type, it is derived from the sign of the amount.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// Transaction represents a single movement of money on an account.
// CategoryID is nil for uncategorized transactions. The categorizer assigns
// a category exactly once, when the transaction is created without one.
type Transaction struct {
	DefaultModel
	User        User            `json:"-"`
	UserID      uuid.UUID       `gorm:"index"`
	Account     Account         `json:"-"`
	AccountID   uuid.UUID       `gorm:"index"`
	Date        time.Time       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
	Merchant    string
	Type        TransactionType
	Category    Category `json:"-"`
	CategoryID  *uuid.UUID
	Pending     bool
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date for UTC
//   - derives the type from the amount sign when the caller did not assert one
//   - trims whitespace from string fields and validates their length
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Merchant = strings.TrimSpace(t.Merchant)

	if len(t.Description) < 1 || len(t.Description) > 200 {
		return ErrDescriptionLength
	}

	if len(t.Merchant) > 100 {
		return ErrMerchantLength
	}

	// Ensure that the Category ID is nil and not a pointer to a nil UUID
	// when it is set
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	// Negative amounts are debits, non-negative ones credits
	if t.Type == "" {
		if t.Amount.IsNegative() {
			t.Type = TransactionTypeDebit
		} else {
			t.Type = TransactionTypeCredit
		}
	}

	if t.Type != TransactionTypeDebit && t.Type != TransactionTypeCredit {
		return ErrTransactionTypeInvalid
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("AccountID") {
		toSave.UserID = t.UserID
		toSave.CategoryID = nil

		if err := t.checkIntegrity(tx, toSave); err != nil {
			return err
		}
	}

	if tx.Statement.Changed("CategoryID") && toSave.CategoryID != nil {
		return CheckCategoryVisible(tx, *toSave.CategoryID, t.UserID)
	}

	return nil
}

// checkIntegrity verifies that the account belongs to the owner of the
// transaction and that a preset category is visible to them.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	var account Account
	err := tx.First(&account, toSave.AccountID).Error
	if err != nil {
		return err
	}

	if account.UserID != toSave.UserID {
		return ErrAccountNotOwned
	}

	if toSave.CategoryID != nil {
		return CheckCategoryVisible(tx, *toSave.CategoryID, toSave.UserID)
	}

	return nil
}
