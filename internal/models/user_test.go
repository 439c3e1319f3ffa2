package models_test

import (
	"github.com/smartrisk-ai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := models.User{Name: "  Jane Doe ", Email: " Jane.Doe@Example.com ", PasswordHash: "salt$hash"}
	suite.Require().Nil(models.DB.Create(&user).Error)

	suite.Assert().Equal("Jane Doe", user.Name)
	suite.Assert().Equal("jane.doe@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	user := models.User{Name: "Jane Doe", Email: "jane.doe@example.com", PasswordHash: "salt$hash"}
	suite.Require().Nil(models.DB.Create(&user).Error)

	// Same address with different casing counts as a duplicate
	duplicate := models.User{Name: "Impostor", Email: "Jane.Doe@example.com", PasswordHash: "salt$hash"}
	err := models.DB.Create(&duplicate).Error
	suite.Require().NotNil(err)
	suite.Assert().Equal(models.ErrEmailNotUnique, err)
}
