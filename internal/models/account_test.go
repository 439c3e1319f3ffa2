package models_test

import (
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAccountCurrencyDefault() {
	user := suite.createTestUser()

	account := models.Account{UserID: user.ID, Name: " Checking ", Type: models.AccountTypeChecking}
	suite.Require().Nil(models.DB.Create(&account).Error)

	suite.Assert().Equal("Checking", account.Name)
	suite.Assert().Equal("USD", account.Currency)
}

func (suite *TestSuiteStandard) TestAccountCurrencyKept() {
	user := suite.createTestUser()

	account := models.Account{UserID: user.ID, Name: "Girokonto", Type: models.AccountTypeChecking, Currency: "EUR"}
	suite.Require().Nil(models.DB.Create(&account).Error)

	suite.Assert().Equal("EUR", account.Currency)
}

func (suite *TestSuiteStandard) TestAccountTypeInvalid() {
	user := suite.createTestUser()

	for _, accountType := range []models.AccountType{"", "piggybank"} {
		account := models.Account{UserID: user.ID, Name: "Checking", Type: accountType}
		err := models.DB.Create(&account).Error
		suite.Require().NotNil(err, "Type: %q", accountType)
		suite.Assert().Equal(models.ErrAccountTypeInvalid, err)
	}
}
