package models_test

import (
	"github.com/google/uuid"
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestClosedDatabaseError() {
	sqlDB, err := models.DB.DB()
	suite.Require().Nil(err)
	suite.Require().Nil(sqlDB.Close())

	err = models.DB.First(&models.Account{}, uuid.New()).Error
	suite.Require().NotNil(err)

	// Users get a generic message, the driver error is only logged
	suite.Assert().Equal(models.ErrGeneral, err)
}

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/path/does/not/exist/database.db")
	suite.Assert().NotNil(err)
}
