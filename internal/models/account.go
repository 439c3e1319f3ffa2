package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// AccountType is the kind of financial account.
type AccountType string

const (
	AccountTypeChecking  AccountType = "checking"
	AccountTypeSavings   AccountType = "savings"
	AccountTypeCredit    AccountType = "credit"
	AccountTypeBrokerage AccountType = "brokerage"
	AccountTypeLoan      AccountType = "loan"
)

// Account represents a financial account of a user, e.g. a bank account.
type Account struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"index"`
	Name        string
	Institution string
	Type        AccountType
	Last4       string
	Balance     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency    string
	Connected   bool
}

// BeforeSave trims whitespace, defaults the currency and validates the type.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Institution = strings.TrimSpace(a.Institution)

	if a.Currency == "" {
		a.Currency = "USD"
	}

	if !slices.Contains([]AccountType{AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeBrokerage, AccountTypeLoan}, a.Type) {
		return ErrAccountTypeInvalid
	}

	return nil
}
