package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBudgetMonthBounds() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, "Groceries")

	for _, month := range []int{0, 13, -3} {
		budget := models.Budget{UserID: user.ID, CategoryID: category.ID, Month: month, Year: 2024, Amount: decimal.NewFromFloat(400)}
		err := models.DB.Create(&budget).Error
		suite.Require().NotNil(err, "Month: %d", month)
		suite.Assert().Equal(models.ErrBudgetMonthInvalid, err)
	}

	budget := models.Budget{UserID: user.ID, CategoryID: category.ID, Month: 12, Year: 2024, Amount: decimal.NewFromFloat(400)}
	suite.Assert().Nil(models.DB.Create(&budget).Error)
}

func (suite *TestSuiteStandard) TestBudgetCategoryVisibility() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	foreign := suite.createTestCategory(other.ID, "Foreign")
	budget := models.Budget{UserID: user.ID, CategoryID: foreign.ID, Month: 3, Year: 2024, Amount: decimal.NewFromFloat(400)}
	err := models.DB.Create(&budget).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrCategoryNotVisible, err)

	global := suite.createGlobalCategory("Global")
	budget = models.Budget{UserID: user.ID, CategoryID: global.ID, Month: 3, Year: 2024, Amount: decimal.NewFromFloat(400)}
	suite.Assert().Nil(models.DB.Create(&budget).Error)
}
