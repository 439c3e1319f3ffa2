package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/smartrisk-ai/backend/internal/controllers/v1"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/test"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	budget := suite.createTestBudget(v1.BudgetEditable{
		CategoryID: category.Data.ID,
		Month:      3,
		Year:       2024,
		Amount:     decimal.NewFromFloat(400),
	})

	suite.Require().NotNil(budget.Data)
	suite.Assert().Equal(3, budget.Data.Month)
	suite.Assert().Equal(2024, budget.Data.Year)
	suite.Assert().True(budget.Data.Amount.Equal(decimal.NewFromFloat(400)))
	suite.Assert().Contains(budget.Data.Links.Category, category.Data.ID.String())
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalidMonth() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	tests := []int{0, 13, -1}
	for _, month := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{
			{
				CategoryID: category.Data.ID,
				Month:      month,
				Year:       2024,
				Amount:     decimal.NewFromFloat(400),
			},
		}, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var res v1.BudgetCreateResponse
		test.DecodeResponse(suite.T(), &r, &res)
		suite.Require().Len(res.Data, 1, "Month: %d", month)
		suite.Require().NotNil(res.Data[0].Error)
		suite.Assert().Equal(models.ErrBudgetMonthInvalid.Error(), *res.Data[0].Error)
	}
}

func (suite *TestSuiteStandard) TestBudgetsCategoryChecks() {
	// Budgets on another user's category are rejected
	otherUser, _ := suite.createTestUser("other@example.com")
	otherCategory := models.Category{UserID: &otherUser.ID, Name: "Not yours"}
	suite.Require().NoError(models.DB.Create(&otherCategory).Error)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{
		{
			CategoryID: otherCategory.ID,
			Month:      3,
			Year:       2024,
			Amount:     decimal.NewFromFloat(400),
		},
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var res v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().Len(res.Data, 1)
	suite.Require().NotNil(res.Data[0].Error)
	suite.Assert().Equal(models.ErrCategoryNotVisible.Error(), *res.Data[0].Error)

	// Global categories can be budgeted
	global := suite.createGlobalCategory("Utilities")
	_ = suite.createTestBudget(v1.BudgetEditable{
		CategoryID: global.ID,
		Month:      3,
		Year:       2024,
		Amount:     decimal.NewFromFloat(100),
	})
}

func (suite *TestSuiteStandard) TestBudgetsGetList() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	_ = suite.createTestBudget(v1.BudgetEditable{CategoryID: category.Data.ID, Month: 12, Year: 2023, Amount: decimal.NewFromFloat(350)})
	_ = suite.createTestBudget(v1.BudgetEditable{CategoryID: category.Data.ID, Month: 1, Year: 2024, Amount: decimal.NewFromFloat(400)})
	_ = suite.createTestBudget(v1.BudgetEditable{CategoryID: category.Data.ID, Month: 2, Year: 2024, Amount: decimal.NewFromFloat(450)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	// Most recent month first
	suite.Require().Len(list.Data, 3)
	suite.Assert().Equal(2, list.Data[0].Month)
	suite.Assert().Equal(1, list.Data[1].Month)
	suite.Assert().Equal(2023, list.Data[2].Year)

	tests := []struct {
		query string
		count int
	}{
		{"year=2024", 2},
		{"month=12", 1},
		{"year=2024&month=1", 1},
		{fmt.Sprintf("category=%s", category.Data.ID), 3},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), nil, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var list v1.BudgetListResponse
		test.DecodeResponse(suite.T(), &r, &list)
		suite.Assert().Len(list.Data, tt.count, "Query: %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	budget := suite.createTestBudget(v1.BudgetEditable{
		CategoryID: category.Data.ID,
		Month:      3,
		Year:       2024,
		Amount:     decimal.NewFromFloat(400),
	})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"amount": decimal.NewFromFloat(500),
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().NotNil(res.Data)
	suite.Assert().True(res.Data.Amount.Equal(decimal.NewFromFloat(500)))

	// The month is kept when it is not in the body
	suite.Assert().Equal(3, res.Data.Month)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	budget := suite.createTestBudget(v1.BudgetEditable{
		CategoryID: category.Data.ID,
		Month:      3,
		Year:       2024,
		Amount:     decimal.NewFromFloat(400),
	})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
