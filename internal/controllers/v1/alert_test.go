package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/smartrisk-ai/backend/internal/controllers/v1"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/test"
)

func (suite *TestSuiteStandard) TestAlertsCreate() {
	alert := suite.createTestAlert(v1.AlertEditable{
		Type:     models.AlertTypeOverspend,
		Severity: models.AlertSeverityWarning,
		Message:  "Dining spend is 40% over plan",
	})

	suite.Require().NotNil(alert.Data)
	suite.Assert().Equal(models.AlertTypeOverspend, alert.Data.Type)
	suite.Assert().Equal(models.AlertSeverityWarning, alert.Data.Severity)
	suite.Assert().False(alert.Data.Read)
}

func (suite *TestSuiteStandard) TestAlertsCreateValidation() {
	tests := []struct {
		name  string
		alert v1.AlertEditable
		err   error
	}{
		{
			"unknown type",
			v1.AlertEditable{Type: "gossip", Severity: models.AlertSeverityInfo},
			models.ErrAlertTypeInvalid,
		},
		{
			"unknown severity",
			v1.AlertEditable{Type: models.AlertTypeBill, Severity: "catastrophic"},
			models.ErrAlertSeverityInvalid,
		},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/alerts", []v1.AlertEditable{tt.alert}, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var res v1.AlertCreateResponse
		test.DecodeResponse(suite.T(), &r, &res)
		suite.Require().Len(res.Data, 1, "Test: %s", tt.name)
		suite.Require().NotNil(res.Data[0].Error)
		suite.Assert().Equal(tt.err.Error(), *res.Data[0].Error, "Test: %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestAlertsGetList() {
	_ = suite.createTestAlert(v1.AlertEditable{Type: models.AlertTypeOverspend, Severity: models.AlertSeverityWarning, Message: "Over budget"})
	_ = suite.createTestAlert(v1.AlertEditable{Type: models.AlertTypeBill, Severity: models.AlertSeverityInfo, Message: "Rent is due"})
	_ = suite.createTestAlert(v1.AlertEditable{Type: models.AlertTypeUnusual, Severity: models.AlertSeverityCritical, Message: "Large cash withdrawal", Read: true})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"type=bill", 1},
		{"severity=critical", 1},
		{"read=true", 1},
		{"limit=2", 2},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/alerts?%s", tt.query), nil, suite.headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var list v1.AlertListResponse
		test.DecodeResponse(suite.T(), &r, &list)
		suite.Assert().Len(list.Data, tt.count, "Query: %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestAlertsScopedToUser() {
	_ = suite.createTestAlert(v1.AlertEditable{Message: "Mine"})

	_, otherHeaders := suite.createTestUser("other@example.com")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/alerts", nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.AlertListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestAlertsMarkRead() {
	alert := suite.createTestAlert(v1.AlertEditable{Message: "Unread"})
	suite.Require().NotNil(alert.Data)

	r := test.Request(suite.T(), http.MethodPatch, alert.Data.Links.Self, map[string]any{
		"read": true,
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.AlertResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().NotNil(res.Data)
	suite.Assert().True(res.Data.Read)

	// Type and severity are kept when they are not in the body
	suite.Assert().Equal(alert.Data.Type, res.Data.Type)
	suite.Assert().Equal(alert.Data.Severity, res.Data.Severity)
}

func (suite *TestSuiteStandard) TestAlertsDelete() {
	alert := suite.createTestAlert(v1.AlertEditable{Message: "Doomed"})

	r := test.Request(suite.T(), http.MethodDelete, alert.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, alert.Data.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
