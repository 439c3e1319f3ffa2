package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var ErrEmailNotUnique = errors.New("a user with this email address already exists")

// Account errors
var ErrAccountTypeInvalid = errors.New("the account type must be one of checking, savings, credit, brokerage, loan")

// Category errors
var (
	ErrCategoryNotVisible = errors.New("the category must be a global category or belong to you")
	ErrCategoryReadOnly   = errors.New("global categories cannot be modified")
)

// Rule errors
var ErrRulePatternLength = errors.New("rule patterns must be between 1 and 100 characters")

// Transaction errors
var (
	ErrDescriptionLength      = errors.New("transaction descriptions must be between 1 and 200 characters")
	ErrMerchantLength         = errors.New("merchant names must not be longer than 100 characters")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be debit or credit")
	ErrAccountNotOwned        = errors.New("the account does not exist or does not belong to you")
)

// Budget errors
var ErrBudgetMonthInvalid = errors.New("the budget month must be between 1 and 12")

// Goal errors
var (
	ErrGoalTargetNotPositive = errors.New("goal target amounts must be larger than zero")
	ErrGoalStatusInvalid     = errors.New("the goal status must be one of active, completed, paused")
)

// Alert errors
var (
	ErrAlertTypeInvalid     = errors.New("the alert type must be one of overspend, cashflow, bill, unusual, goal")
	ErrAlertSeverityInvalid = errors.New("the alert severity must be one of info, warning, critical")
)

// Settings errors
var (
	ErrSettingsExist        = errors.New("settings for this user already exist")
	ErrThemeInvalid         = errors.New("the theme preference must be one of light, dark, system")
	ErrRiskThresholdInvalid = errors.New("the risk threshold must be between 300 and 850")
)

// Assessment errors
var (
	ErrApplicantNameLength = errors.New("applicant names must be between 2 and 100 characters")
	ErrCreditScoreRange    = errors.New("the credit score must be between 300 and 850")
	ErrIncomeNotPositive   = errors.New("the income must be larger than zero")
	ErrDebtToIncomeRange   = errors.New("the debt-to-income ratio must be between 0 and 1")
)
