// Package risk scores credit applications.
//
// The primary scorer asks a generative model for an assessment, the
// fallback is a deterministic formula. Both produce a score on the
// 300-850 scale together with a risk level and a textual summary.
package risk

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
)

// Input is the application data a scorer works on.
type Input struct {
	ApplicantName     string
	CreditScore       int
	Income            decimal.Decimal
	DebtToIncomeRatio float64
	EmploymentHistory string
}

// Outcome is the result of scoring one application.
type Outcome struct {
	AIScore         int
	RiskLevel       models.RiskLevel
	AnalysisSummary string
}

// Level maps a score on the 300-850 scale to a risk level.
func Level(score int) models.RiskLevel {
	switch {
	case score >= 700:
		return models.RiskLevelLow
	case score >= 600:
		return models.RiskLevelMedium
	case score >= 500:
		return models.RiskLevelHigh
	default:
		return models.RiskLevelCritical
	}
}

// Calculate scores an application with the deterministic formula. It is
// used as the fallback when the generative model is unavailable or
// returns an unusable response.
func Calculate(input Input) Outcome {
	base := float64(input.CreditScore)

	// Income contribution, capped so that very high incomes do not
	// dominate the score
	income, _ := input.Income.Float64()
	contribution := income / 1000
	if contribution > 100 {
		contribution = 100
	}
	base += contribution * 2

	// Debt penalty
	base -= input.DebtToIncomeRatio * 300

	// Employment stability bonus
	if len(input.EmploymentHistory) > 50 {
		base += 50
	}

	if base < 300 {
		base = 300
	}
	if base > 850 {
		base = 850
	}

	score := int(base + 0.5)
	level := Level(score)

	return Outcome{
		AIScore:         score,
		RiskLevel:       level,
		AnalysisSummary: summarize(score, level, input),
	}
}

func summarize(score int, level models.RiskLevel, input Input) string {
	summary := fmt.Sprintf("Risk analysis: score %d/850 (%s risk). ", score, level)

	if input.CreditScore < 600 {
		summary += "Low credit score is a major concern. "
	}
	if input.DebtToIncomeRatio > 0.4 {
		summary += "High debt-to-income ratio increases default risk. "
	}
	if input.Income.LessThan(decimal.NewFromInt(40000)) {
		summary += "Low income level may affect repayment ability. "
	}

	switch level {
	case models.RiskLevelLow:
		summary += "Application recommended for approval."
	case models.RiskLevelMedium:
		summary += "Consider conditional approval with monitoring."
	case models.RiskLevelHigh:
		summary += "High risk, recommend additional verification."
	default:
		summary += "Critical risk, application should be declined."
	}

	return summary
}
