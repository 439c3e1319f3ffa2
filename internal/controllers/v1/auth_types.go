package v1

import (
	"github.com/smartrisk-ai/backend/internal/models"
)

type RegisterEditable struct {
	Name     string `json:"name" example:"Jane Doe"`               // Name of the user
	Email    string `json:"email" example:"jane.doe@example.com"`  // Email address, used for login
	Password string `json:"password" example:"correct horse b s."` // Password, 8-100 characters
}

type LoginEditable struct {
	Email    string `json:"email" example:"jane.doe@example.com"`  // Email address
	Password string `json:"password" example:"correct horse b s."` // Password
}

// User is the representation of a User in API v1. The password hash is
// never part of a response.
type User struct {
	models.DefaultModel
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane.doe@example.com"`
}

// newUser returns the API v1 representation of the resource
func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
	}
}

// AuthData is the payload of a successful registration or login.
type AuthData struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the Authorization header
	User  User   `json:"user"`                                                    // The authenticated user
}

type AuthResponse struct {
	Error *string   `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
	Data  *AuthData `json:"data"`                                               // The token and user, if authentication was successful
}

type UserResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *User   `json:"data"`                                                          // The User data
}
