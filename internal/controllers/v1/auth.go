package v1

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartrisk-ai/backend/internal/auth"
	"github.com/smartrisk-ai/backend/internal/httputil"
	"github.com/smartrisk-ai/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed. These routes do not require a token.
func RegisterAuthRoutes(r *gin.RouterGroup, secret string, tokenLifetime time.Duration) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", Register(secret, tokenLifetime))

	r.OPTIONS("/login", OptionsAuth)
	r.POST("/login", Login(secret, tokenLifetime))
}

// RegisterMeRoutes registers the route returning the authenticated user.
func RegisterMeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/me", OptionsMe)
	r.GET("/me", GetMe)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Register
// @Description	Creates a new user and returns a token for it
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201		{object}	AuthResponse
// @Failure		400		{object}	AuthResponse
// @Failure		500		{object}	AuthResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func Register(secret string, tokenLifetime time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable RegisterEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AuthResponse{Error: &e})
			return
		}

		if err := validateRegistration(editable); err != nil {
			e := err.Error()
			c.JSON(status(err), AuthResponse{Error: &e})
			return
		}

		hash, err := auth.HashPassword(editable.Password)
		if err != nil {
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, AuthResponse{Error: &e})
			return
		}

		user := models.User{
			Name:         strings.TrimSpace(editable.Name),
			Email:        editable.Email,
			PasswordHash: hash,
		}
		err = models.DB.Create(&user).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AuthResponse{Error: &e})
			return
		}

		token, err := auth.GenerateToken(secret, user.ID, tokenLifetime)
		if err != nil {
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, AuthResponse{Error: &e})
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{Data: &AuthData{
			Token: token,
			User:  newUser(user),
		}})
	}
}

// @Summary		Login
// @Description	Verifies the credentials and returns a token
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	AuthResponse
// @Failure		400			{object}	AuthResponse
// @Failure		401			{object}	AuthResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(secret string, tokenLifetime time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable LoginEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AuthResponse{Error: &e})
			return
		}

		var user models.User
		err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(editable.Email))).Error
		if err != nil || !auth.CheckPassword(editable.Password, user.PasswordHash) {
			// Report the same error for an unknown email and a wrong
			// password so that accounts cannot be enumerated
			e := errCredentialsInvalid.Error()
			c.JSON(http.StatusUnauthorized, AuthResponse{Error: &e})
			return
		}

		token, err := auth.GenerateToken(secret, user.ID, tokenLifetime)
		if err != nil {
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, AuthResponse{Error: &e})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Data: &AuthData{
			Token: token,
			User:  newUser(user),
		}})
	}
}

// @Summary		Get the authenticated user
// @Description	Returns the user the token belongs to
// @Tags			Authentication
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	UserResponse
// @Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

func validateRegistration(editable RegisterEditable) error {
	if strings.TrimSpace(editable.Name) == "" {
		return errNameNotSet
	}

	if _, err := mail.ParseAddress(editable.Email); err != nil {
		return errEmailInvalid
	}

	if len(editable.Password) < 8 || len(editable.Password) > 100 {
		return errPasswordLength
	}

	return nil
}
