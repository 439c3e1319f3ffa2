package models_test

import (
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	user := suite.createTestUser()

	settings := models.Settings{UserID: user.ID}
	suite.Require().Nil(models.DB.Create(&settings).Error)

	suite.Assert().Equal(models.ThemeSystem, settings.ThemePreference)
	suite.Assert().Equal(700, settings.RiskThreshold)
	suite.Assert().False(settings.EmailNotifications)
}

func (suite *TestSuiteStandard) TestSettingsThemeInvalid() {
	user := suite.createTestUser()

	settings := models.Settings{UserID: user.ID, ThemePreference: "solarized"}
	err := models.DB.Create(&settings).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrThemeInvalid, err)
}

func (suite *TestSuiteStandard) TestSettingsThresholdBounds() {
	user := suite.createTestUser()

	for _, threshold := range []int{200, 851, -10} {
		settings := models.Settings{UserID: user.ID, RiskThreshold: threshold}
		err := models.DB.Create(&settings).Error
		suite.Require().NotNil(err, "Threshold: %d", threshold)
		suite.Assert().Equal(models.ErrRiskThresholdInvalid, err)
	}
}

func (suite *TestSuiteStandard) TestSettingsOnePerUser() {
	user := suite.createTestUser()

	settings := models.Settings{UserID: user.ID}
	suite.Require().Nil(models.DB.Create(&settings).Error)

	duplicate := models.Settings{UserID: user.ID}
	err := models.DB.Create(&duplicate).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrSettingsExist, err)
}
