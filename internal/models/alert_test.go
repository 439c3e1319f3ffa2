package models_test

import (
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAlertTypeInvalid() {
	user := suite.createTestUser()

	for _, alertType := range []models.AlertType{"", "gossip"} {
		alert := models.Alert{UserID: user.ID, Type: alertType, Severity: models.AlertSeverityInfo, Message: "Something happened"}
		err := models.DB.Create(&alert).Error
		suite.Require().NotNil(err, "Type: %q", alertType)
		suite.Assert().Equal(models.ErrAlertTypeInvalid, err)
	}
}

func (suite *TestSuiteStandard) TestAlertSeverityInvalid() {
	user := suite.createTestUser()

	for _, severity := range []models.AlertSeverity{"", "catastrophic"} {
		alert := models.Alert{UserID: user.ID, Type: models.AlertTypeBill, Severity: severity, Message: "Something happened"}
		err := models.DB.Create(&alert).Error
		suite.Require().NotNil(err, "Severity: %q", severity)
		suite.Assert().Equal(models.ErrAlertSeverityInvalid, err)
	}
}

func (suite *TestSuiteStandard) TestAlertValid() {
	user := suite.createTestUser()

	alert := models.Alert{UserID: user.ID, Type: models.AlertTypeGoal, Severity: models.AlertSeverityCritical, Message: "Goal deadline missed"}
	suite.Assert().Nil(models.DB.Create(&alert).Error)
	suite.Assert().False(alert.Read)
}
