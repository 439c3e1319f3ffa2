package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestGoalStatusDefault() {
	user := suite.createTestUser()

	goal := models.Goal{UserID: user.ID, Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000)}
	suite.Require().Nil(models.DB.Create(&goal).Error)
	suite.Assert().Equal(models.GoalStatusActive, goal.Status)
}

func (suite *TestSuiteStandard) TestGoalStatusInvalid() {
	user := suite.createTestUser()

	goal := models.Goal{UserID: user.ID, Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000), Status: "abandoned"}
	err := models.DB.Create(&goal).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrGoalStatusInvalid, err)
}

func (suite *TestSuiteStandard) TestGoalTargetMustBePositive() {
	user := suite.createTestUser()

	for _, target := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-100)} {
		goal := models.Goal{UserID: user.ID, Name: "Emergency fund", TargetAmount: target}
		err := models.DB.Create(&goal).Error
		suite.Require().NotNil(err, "Target: %s", target)
		suite.Assert().Equal(models.ErrGoalTargetNotPositive, err)
	}

	// The failed creation is rolled back
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Goal{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestGoalCategoryVisibility() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	foreign := suite.createTestCategory(other.ID, "Foreign")
	goal := models.Goal{UserID: user.ID, Name: "Sneaky", TargetAmount: decimal.NewFromFloat(100), CategoryID: &foreign.ID}
	err := models.DB.Create(&goal).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrCategoryNotVisible, err)
}
