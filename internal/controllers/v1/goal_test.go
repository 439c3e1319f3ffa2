package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/smartrisk-ai/backend/internal/controllers/v1"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/test"
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	goal := suite.createTestGoal(v1.GoalEditable{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(10000),
		Deadline:     &deadline,
	})

	suite.Require().NotNil(goal.Data)
	suite.Assert().Equal("Emergency fund", goal.Data.Name)

	// New goals are active when no status is asserted
	suite.Assert().Equal(models.GoalStatusActive, goal.Data.Status)
	suite.Assert().True(goal.Data.CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestGoalsCreateValidation() {
	tests := []struct {
		name string
		goal v1.GoalEditable
		err  error
	}{
		{
			"target amount missing",
			v1.GoalEditable{Name: "No target"},
			models.ErrGoalTargetNotPositive,
		},
		{
			"target amount negative",
			v1.GoalEditable{Name: "Negative", TargetAmount: decimal.NewFromFloat(-100)},
			models.ErrGoalTargetNotPositive,
		},
		{
			"unknown status",
			v1.GoalEditable{Name: "Wrong status", TargetAmount: decimal.NewFromFloat(100), Status: "abandoned"},
			models.ErrGoalStatusInvalid,
		},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{tt.goal}, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var res v1.GoalCreateResponse
		test.DecodeResponse(suite.T(), &r, &res)
		suite.Require().Len(res.Data, 1, "Test: %s", tt.name)
		suite.Require().NotNil(res.Data[0].Error)
		suite.Assert().Equal(tt.err.Error(), *res.Data[0].Error, "Test: %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestGoalsCategoryChecks() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Travel"})

	goal := suite.createTestGoal(v1.GoalEditable{
		Name:         "Japan trip",
		TargetAmount: decimal.NewFromFloat(4000),
		CategoryID:   &category.Data.ID,
	})
	suite.Require().NotNil(goal.Data)

	// Another user's category cannot be linked
	otherUser, _ := suite.createTestUser("other@example.com")
	otherCategory := models.Category{UserID: &otherUser.ID, Name: "Not yours"}
	suite.Require().NoError(models.DB.Create(&otherCategory).Error)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{
		{
			Name:         "Sneaky",
			TargetAmount: decimal.NewFromFloat(100),
			CategoryID:   &otherCategory.ID,
		},
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var res v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().Len(res.Data, 1)
	suite.Require().NotNil(res.Data[0].Error)
	suite.Assert().Equal(models.ErrCategoryNotVisible.Error(), *res.Data[0].Error)
}

func (suite *TestSuiteStandard) TestGoalsGetList() {
	_ = suite.createTestGoal(v1.GoalEditable{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000)})
	_ = suite.createTestGoal(v1.GoalEditable{Name: "New car", TargetAmount: decimal.NewFromFloat(25000), Status: models.GoalStatusPaused})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"status=active", 1},
		{"status=paused", 1},
		{"name=car", 1},
		{"limit=1", 1},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), nil, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var list v1.GoalListResponse
		test.DecodeResponse(suite.T(), &r, &list)
		suite.Assert().Len(list.Data, tt.count, "Query: %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := suite.createTestGoal(v1.GoalEditable{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(10000),
	})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"currentAmount": decimal.NewFromFloat(10000),
		"status":        models.GoalStatusCompleted,
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().NotNil(res.Data)
	suite.Assert().Equal(models.GoalStatusCompleted, res.Data.Status)
	suite.Assert().True(res.Data.CurrentAmount.Equal(decimal.NewFromFloat(10000)))

	// The target is kept when it is not in the body
	suite.Assert().True(res.Data.TargetAmount.Equal(decimal.NewFromFloat(10000)))
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := suite.createTestGoal(v1.GoalEditable{
		Name:         "Doomed",
		TargetAmount: decimal.NewFromFloat(100),
	})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
