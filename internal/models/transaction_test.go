package models_test

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTransactionTypeDerived() {
	user := suite.createTestUser()
	account := suite.createTestAccount(user.ID)

	debit := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-14.03), Description: "Coffee"}
	suite.Require().Nil(models.DB.Create(&debit).Error)
	suite.Assert().Equal(models.TransactionTypeDebit, debit.Type)

	credit := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(2000), Description: "Salary"}
	suite.Require().Nil(models.DB.Create(&credit).Error)
	suite.Assert().Equal(models.TransactionTypeCredit, credit.Type)

	// An asserted type is kept regardless of the sign
	refund := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(12), Description: "Refund", Type: models.TransactionTypeDebit}
	suite.Require().Nil(models.DB.Create(&refund).Error)
	suite.Assert().Equal(models.TransactionTypeDebit, refund.Type)
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	user := suite.createTestUser()
	account := suite.createTestAccount(user.ID)

	transaction := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-1), Description: "Coffee", Type: "transfer"}
	err := models.DB.Create(&transaction).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrTransactionTypeInvalid, err)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	user := suite.createTestUser()
	account := suite.createTestAccount(user.ID)

	transaction := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-1), Description: "Coffee"}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	user := suite.createTestUser()
	account := suite.createTestAccount(user.ID)

	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Require().Nil(err)

	transaction := models.Transaction{
		UserID:      user.ID,
		AccountID:   account.ID,
		Amount:      decimal.NewFromFloat(-1),
		Description: "Coffee",
		Date:        time.Date(2024, 3, 1, 10, 0, 0, 0, berlin),
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)
	suite.Assert().Equal(time.UTC, transaction.Date.Location())

	var reloaded models.Transaction
	suite.Require().Nil(models.DB.First(&reloaded, transaction.ID).Error)
	suite.Assert().Equal(time.UTC, reloaded.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionStringBounds() {
	user := suite.createTestUser()
	account := suite.createTestAccount(user.ID)

	transaction := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-1), Description: "   "}
	err := models.DB.Create(&transaction).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrDescriptionLength, err)

	transaction = models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-1), Description: strings.Repeat("x", 201)}
	err = models.DB.Create(&transaction).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrDescriptionLength, err)

	transaction = models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-1), Description: "Coffee", Merchant: strings.Repeat("x", 101)}
	err = models.DB.Create(&transaction).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrMerchantLength, err)
}

func (suite *TestSuiteStandard) TestTransactionAccountOwnership() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	foreignAccount := suite.createTestAccount(other.ID)

	transaction := models.Transaction{UserID: user.ID, AccountID: foreignAccount.ID, Amount: decimal.NewFromFloat(-1), Description: "Sneaky"}
	err := models.DB.Create(&transaction).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrAccountNotOwned, err)
}

func (suite *TestSuiteStandard) TestTransactionAccountMove() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	account := suite.createTestAccount(user.ID)
	second := suite.createTestAccount(user.ID)
	foreign := suite.createTestAccount(other.ID)

	transaction := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-1), Description: "Coffee"}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	// Moving to an own account works
	err := models.DB.Model(&transaction).Select("", "AccountID").Updates(models.Transaction{AccountID: second.ID, Amount: transaction.Amount, Description: transaction.Description}).Error
	suite.Assert().Nil(err)

	// Moving to a foreign account does not
	err = models.DB.Model(&transaction).Select("", "AccountID").Updates(models.Transaction{AccountID: foreign.ID, Amount: transaction.Amount, Description: transaction.Description}).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrAccountNotOwned, err)
}

func (suite *TestSuiteStandard) TestTransactionNilCategoryReset() {
	user := suite.createTestUser()
	account := suite.createTestAccount(user.ID)

	// A pointer to the zero UUID means "no category"
	nilID := uuid.Nil
	transaction := models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-1), Description: "Coffee", CategoryID: &nilID}
	suite.Require().Nil(models.DB.Create(&transaction).Error)
	suite.Assert().Nil(transaction.CategoryID)
}
