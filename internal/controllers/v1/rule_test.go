package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/smartrisk-ai/backend/internal/controllers/v1"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/test"
)

func (suite *TestSuiteStandard) TestRulesCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Coffee"})

	rule := suite.createTestRule(v1.RuleEditable{
		Pattern:    "STARBUCKS",
		CategoryID: category.Data.ID,
		Priority:   10,
	})

	suite.Require().NotNil(rule.Data)
	suite.Assert().Equal("STARBUCKS", rule.Data.Pattern)
	suite.Assert().Equal(uint(10), rule.Data.Priority)
}

func (suite *TestSuiteStandard) TestRulesCreateValidation() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Coffee"})

	// Empty pattern
	res := suite.createTestRule(v1.RuleEditable{
		CategoryID: category.Data.ID,
	}, http.StatusBadRequest)
	suite.Require().NotNil(res.Error)
	suite.Assert().Equal(models.ErrRulePatternLength.Error(), *res.Error)

	// Pattern too long
	res = suite.createTestRule(v1.RuleEditable{
		Pattern:    strings.Repeat("a", 101),
		CategoryID: category.Data.ID,
	}, http.StatusBadRequest)
	suite.Require().NotNil(res.Error)

	// Category of another user
	_, otherHeaders := suite.createTestUser("other@example.com")
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rules", []v1.RuleEditable{
		{Pattern: "COFFEE", CategoryID: category.Data.ID},
	}, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRulesGetListOrder() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Coffee"})

	_ = suite.createTestRule(v1.RuleEditable{Pattern: "GROCERY", CategoryID: category.Data.ID, Priority: 1})
	_ = suite.createTestRule(v1.RuleEditable{Pattern: "STARBUCKS", CategoryID: category.Data.ID, Priority: 20})
	_ = suite.createTestRule(v1.RuleEditable{Pattern: "COFFEE", CategoryID: category.Data.ID, Priority: 10})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/rules", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.RuleListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)

	// Rules are returned in matching order
	suite.Assert().Equal("STARBUCKS", list.Data[0].Pattern)
	suite.Assert().Equal("COFFEE", list.Data[1].Pattern)
	suite.Assert().Equal("GROCERY", list.Data[2].Pattern)
}

func (suite *TestSuiteStandard) TestRulesPatternFilter() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Coffee"})

	_ = suite.createTestRule(v1.RuleEditable{Pattern: "STARBUCKS", CategoryID: category.Data.ID})
	_ = suite.createTestRule(v1.RuleEditable{Pattern: "DUNKIN", CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/rules?pattern=STAR", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.RuleListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)
}

func (suite *TestSuiteStandard) TestRulesUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Coffee"})
	rule := suite.createTestRule(v1.RuleEditable{Pattern: "STARBUCKS", CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"priority": 42,
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.RuleResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().NotNil(res.Data)
	suite.Assert().Equal(uint(42), res.Data.Priority)
	suite.Assert().Equal("STARBUCKS", res.Data.Pattern)
}

func (suite *TestSuiteStandard) TestRulesDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Coffee"})
	rule := suite.createTestRule(v1.RuleEditable{Pattern: "STARBUCKS", CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
