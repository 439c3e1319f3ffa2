package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/smartrisk-ai/backend/internal/controllers/v1"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/test"
)

func (suite *TestSuiteStandard) TestAssessmentsCreate() {
	assessment := suite.createTestAssessment(v1.AssessmentEditable{
		ApplicantName:     "Jordan Meyer",
		CreditScore:       720,
		Income:            decimal.NewFromFloat(85000),
		DebtToIncomeRatio: 0.25,
		EmploymentHistory: "8 years at Initech",
	})

	suite.Require().NotNil(assessment.Data)
	suite.Assert().Equal(815, assessment.Data.AIScore)
	suite.Assert().Equal(models.RiskLevelLow, assessment.Data.RiskLevel)
	suite.Assert().Contains(assessment.Data.AnalysisSummary, "score 815/850")
	suite.Assert().Contains(assessment.Data.AnalysisSummary, "recommended for approval")
}

func (suite *TestSuiteStandard) TestAssessmentsEmploymentBonus() {
	// A detailed employment history pushes the score up, the scale is
	// capped at 850
	assessment := suite.createTestAssessment(v1.AssessmentEditable{
		ApplicantName:     "Jordan Meyer",
		CreditScore:       720,
		Income:            decimal.NewFromFloat(85000),
		DebtToIncomeRatio: 0.25,
		EmploymentHistory: "8 years at Initech as a senior analyst, before that 4 years at Globex",
	})

	suite.Require().NotNil(assessment.Data)
	suite.Assert().Equal(850, assessment.Data.AIScore)
}

func (suite *TestSuiteStandard) TestAssessmentsCriticalRisk() {
	assessment := suite.createTestAssessment(v1.AssessmentEditable{
		ApplicantName:     "Sam Fields",
		CreditScore:       520,
		Income:            decimal.NewFromFloat(30000),
		DebtToIncomeRatio: 0.6,
	})

	suite.Require().NotNil(assessment.Data)
	suite.Assert().Equal(400, assessment.Data.AIScore)
	suite.Assert().Equal(models.RiskLevelCritical, assessment.Data.RiskLevel)
	suite.Assert().Contains(assessment.Data.AnalysisSummary, "Low credit score is a major concern.")
	suite.Assert().Contains(assessment.Data.AnalysisSummary, "High debt-to-income ratio increases default risk.")
	suite.Assert().Contains(assessment.Data.AnalysisSummary, "Low income level may affect repayment ability.")
	suite.Assert().Contains(assessment.Data.AnalysisSummary, "should be declined")
}

func (suite *TestSuiteStandard) TestAssessmentsCreateValidation() {
	tests := []struct {
		name       string
		assessment v1.AssessmentEditable
		err        error
	}{
		{
			"name too short",
			v1.AssessmentEditable{ApplicantName: "J", CreditScore: 700, Income: decimal.NewFromFloat(50000)},
			models.ErrApplicantNameLength,
		},
		{
			"credit score too low",
			v1.AssessmentEditable{ApplicantName: "Jordan Meyer", CreditScore: 299, Income: decimal.NewFromFloat(50000)},
			models.ErrCreditScoreRange,
		},
		{
			"credit score too high",
			v1.AssessmentEditable{ApplicantName: "Jordan Meyer", CreditScore: 851, Income: decimal.NewFromFloat(50000)},
			models.ErrCreditScoreRange,
		},
		{
			"income missing",
			v1.AssessmentEditable{ApplicantName: "Jordan Meyer", CreditScore: 700},
			models.ErrIncomeNotPositive,
		},
		{
			"debt ratio above one",
			v1.AssessmentEditable{ApplicantName: "Jordan Meyer", CreditScore: 700, Income: decimal.NewFromFloat(50000), DebtToIncomeRatio: 1.2},
			models.ErrDebtToIncomeRange,
		},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/assessments", []v1.AssessmentEditable{tt.assessment}, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var res v1.AssessmentCreateResponse
		test.DecodeResponse(suite.T(), &r, &res)
		suite.Require().Len(res.Data, 1, "Test: %s", tt.name)
		suite.Require().NotNil(res.Data[0].Error)
		suite.Assert().Equal(tt.err.Error(), *res.Data[0].Error, "Test: %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestAssessmentsGetList() {
	_ = suite.createTestAssessment(v1.AssessmentEditable{
		ApplicantName: "Jordan Meyer",
		CreditScore:   780,
		Income:        decimal.NewFromFloat(90000),
	})
	_ = suite.createTestAssessment(v1.AssessmentEditable{
		ApplicantName:     "Sam Fields",
		CreditScore:       520,
		Income:            decimal.NewFromFloat(30000),
		DebtToIncomeRatio: 0.6,
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"riskLevel=low", 1},
		{"riskLevel=critical", 1},
		{"applicantName=Sam", 1},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/assessments?%s", tt.query), nil, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var list v1.AssessmentListResponse
		test.DecodeResponse(suite.T(), &r, &list)
		suite.Assert().Len(list.Data, tt.count, "Query: %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestAssessmentsImmutable() {
	assessment := suite.createTestAssessment(v1.AssessmentEditable{
		ApplicantName: "Jordan Meyer",
		CreditScore:   780,
		Income:        decimal.NewFromFloat(90000),
	})

	// Assessments cannot be changed after they are scored
	r := test.Request(suite.T(), http.MethodPatch, assessment.Data.Links.Self, map[string]any{
		"creditScore": 850,
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = test.Request(suite.T(), http.MethodOptions, assessment.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAssessmentsDelete() {
	assessment := suite.createTestAssessment(v1.AssessmentEditable{
		ApplicantName: "Jordan Meyer",
		CreditScore:   780,
		Income:        decimal.NewFromFloat(90000),
	})

	r := test.Request(suite.T(), http.MethodDelete, assessment.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, assessment.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
