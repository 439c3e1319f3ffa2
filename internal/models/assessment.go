package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RiskLevel is the risk classification of an assessment.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// Assessment is a credit-risk assessment of an applicant. AIScore, RiskLevel
// and AnalysisSummary are computed by the scorer at creation time, never
// supplied by the caller.
type Assessment struct {
	DefaultModel
	User              User      `json:"-"`
	UserID            uuid.UUID `gorm:"index"`
	ApplicantName     string
	CreditScore       int
	Income            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DebtToIncomeRatio float64
	EmploymentHistory string
	AIScore           int
	RiskLevel         RiskLevel
	AnalysisSummary   string
}

func (a *Assessment) BeforeSave(_ *gorm.DB) error {
	a.ApplicantName = strings.TrimSpace(a.ApplicantName)
	a.EmploymentHistory = strings.TrimSpace(a.EmploymentHistory)

	if len(a.ApplicantName) < 2 || len(a.ApplicantName) > 100 {
		return ErrApplicantNameLength
	}

	if a.CreditScore < 300 || a.CreditScore > 850 {
		return ErrCreditScoreRange
	}

	if !a.Income.IsPositive() {
		return ErrIncomeNotPositive
	}

	if a.DebtToIncomeRatio < 0 || a.DebtToIncomeRatio > 1 {
		return ErrDebtToIncomeRange
	}

	return nil
}
