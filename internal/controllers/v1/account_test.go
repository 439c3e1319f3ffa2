package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/smartrisk-ai/backend/internal/controllers/v1"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/test"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:        "Everyday checking",
		Institution: "Example Bank",
		Type:        models.AccountTypeChecking,
		Last4:       "4321",
		Balance:     decimal.NewFromFloat(1732.45),
	})

	suite.Require().NotNil(account.Data)
	suite.Assert().Equal("Everyday checking", account.Data.Name)
	suite.Assert().True(account.Data.Balance.Equal(decimal.NewFromFloat(1732.45)))

	// The default currency is set when none is submitted
	suite.Assert().Equal("USD", account.Data.Currency)
	suite.Assert().NotEmpty(account.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidType() {
	res := suite.createTestAccount(v1.AccountEditable{
		Name: "Wrong",
		Type: "piggybank",
	}, http.StatusBadRequest)

	suite.Require().NotNil(res.Error)
	suite.Assert().Equal(models.ErrAccountTypeInvalid.Error(), *res.Error)
}

func (suite *TestSuiteStandard) TestAccountsGet() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Only account"})

	r := test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().NotNil(res.Data)
	suite.Assert().Equal(account.Data.ID, res.Data.ID)
}

func (suite *TestSuiteStandard) TestAccountsGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts/not-a-uuid", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts/344fdefa-9f43-4909-aab9-2c58f163bbfa", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsGetList() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Checking", Type: models.AccountTypeChecking})
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Savings", Type: models.AccountTypeSavings})
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Old savings", Type: models.AccountTypeSavings})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"type=savings", 2},
		{"name=Savings", 2},
		{"name=Old", 1},
		{"type=loan", 0},
		{"limit=2", 2},
		{"offset=2", 1},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), nil, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var res v1.AccountListResponse
		test.DecodeResponse(suite.T(), &r, &res)
		suite.Assert().Len(res.Data, tt.count, "Query: %s", tt.query)
		suite.Require().NotNil(res.Pagination, "Query: %s", tt.query)
		suite.Assert().Equal(tt.count, res.Pagination.Count, "Query: %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestAccountsScopedToUser() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Mine"})

	_, otherHeaders := suite.createTestUser("other@example.com")

	// The other user cannot see the account, neither in the list nor directly
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)

	r = test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{
		"name":      "After",
		"connected": true,
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().NotNil(res.Data)
	suite.Assert().Equal("After", res.Data.Name)
	suite.Assert().True(res.Data.Connected)

	// The type is untouched by the partial update
	suite.Assert().Equal(models.AccountTypeChecking, res.Data.Type)
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Doomed"})

	r := test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsCreatePartialFailure() {
	body := []v1.AccountEditable{
		{Name: "Valid", Type: models.AccountTypeChecking},
		{Name: "Invalid", Type: "piggybank"},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", body, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var res v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().Len(res.Data, 2)
	suite.Assert().NotNil(res.Data[0].Data)
	suite.Assert().NotNil(res.Data[1].Error)
}

func (suite *TestSuiteStandard) TestAccountsDBClosed() {
	suite.CloseDB()

	res := suite.createTestAccount(v1.AccountEditable{Name: "Unsaveable"}, http.StatusInternalServerError)
	suite.Assert().Nil(res.Data)
}

func (suite *TestSuiteStandard) TestAccountsOptions() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Options"})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/accounts", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, account.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
}
