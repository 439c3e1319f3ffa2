package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/internal/risk"
)

type AssessmentEditable struct {
	ApplicantName     string          `json:"applicantName" example:"Jordan Meyer"`                             // Name of the applicant
	CreditScore       int             `json:"creditScore" example:"720"`                                        // Bureau credit score, 300 to 850
	Income            decimal.Decimal `json:"income" example:"85000"`                                           // Annual income
	DebtToIncomeRatio float64         `json:"debtToIncomeRatio" example:"0.25"`                                 // Debt payments divided by income, 0 to 1
	EmploymentHistory string          `json:"employmentHistory" example:"8 years at Initech as senior analyst"` // Free text describing the employment history
}

// model returns the database resource for the API representation of the editable fields
func (editable AssessmentEditable) model(userID uuid.UUID) models.Assessment {
	return models.Assessment{
		UserID:            userID,
		ApplicantName:     editable.ApplicantName,
		CreditScore:       editable.CreditScore,
		Income:            editable.Income,
		DebtToIncomeRatio: editable.DebtToIncomeRatio,
		EmploymentHistory: editable.EmploymentHistory,
	}
}

// input returns the scorer input for the editable fields.
func (editable AssessmentEditable) input() risk.Input {
	return risk.Input{
		ApplicantName:     editable.ApplicantName,
		CreditScore:       editable.CreditScore,
		Income:            editable.Income,
		DebtToIncomeRatio: editable.DebtToIncomeRatio,
		EmploymentHistory: editable.EmploymentHistory,
	}
}

type AssessmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/assessments/5c1b7f2e-dbb0-4f1a-9356-1e2a9cbd4501"` // The assessment itself
}

// Assessment is the representation of an Assessment in API v1.
type Assessment struct {
	models.DefaultModel
	AssessmentEditable
	AIScore         int              `json:"aiScore" example:"815"`                                               // Score computed at creation time, 300 to 850
	RiskLevel       models.RiskLevel `json:"riskLevel" example:"low"`                                             // Risk classification derived from the score
	AnalysisSummary string           `json:"analysisSummary" example:"Risk analysis: score 815/850 (low risk). "` // Narrative explanation of the score
	Links           AssessmentLinks  `json:"links"`
}

// newAssessment returns the API v1 representation of the resource
func newAssessment(c *gin.Context, model models.Assessment) Assessment {
	url := c.GetString(string(models.DBContextURL))

	return Assessment{
		DefaultModel: model.DefaultModel,
		AssessmentEditable: AssessmentEditable{
			ApplicantName:     model.ApplicantName,
			CreditScore:       model.CreditScore,
			Income:            model.Income,
			DebtToIncomeRatio: model.DebtToIncomeRatio,
			EmploymentHistory: model.EmploymentHistory,
		},
		AIScore:         model.AIScore,
		RiskLevel:       model.RiskLevel,
		AnalysisSummary: model.AnalysisSummary,
		Links: AssessmentLinks{
			Self: fmt.Sprintf("%s/v1/assessments/%s", url, model.ID),
		},
	}
}

type AssessmentListResponse struct {
	Data       []Assessment `json:"data"`                                                          // List of assessments
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AssessmentCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AssessmentResponse `json:"data"`                                                          // List of created Assessments
}

func (a *AssessmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AssessmentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AssessmentResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this assessment
	Data  *Assessment `json:"data"`                                                          // The Assessment data, if creation was successful
}

type AssessmentQueryFilter struct {
	ApplicantName string `form:"applicantName" filterField:"false"` // Applicant name contains this string
	RiskLevel     string `form:"riskLevel"`                         // Risk classification of the assessment
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Assessment returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Assessments to return. Defaults to 50.
}

func (f AssessmentQueryFilter) model() models.Assessment {
	return models.Assessment{
		RiskLevel: models.RiskLevel(f.RiskLevel),
	}
}
