package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartrisk-ai/backend/internal/httputil"
	"github.com/smartrisk-ai/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterSettingsRoutes registers the routes for the user settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// settingsForUser returns the settings row of the user, creating it
// with default values on first read.
func settingsForUser(c *gin.Context) (models.Settings, error) {
	var settings models.Settings

	err := models.DB.First(&settings, "user_id = ?", userID(c)).Error
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Settings{UserID: userID(c)}
		err = models.DB.Create(&settings).Error
	}

	return settings, err
}

// @Summary		Get settings
// @Description	Returns the settings of the user. The settings are created with default values on the first request.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := settingsForUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Updates the settings of the user. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := settingsForUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	var update SettingsEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	// Theme and threshold are validated on every save, keep the stored
	// values when they are not in the body
	if update.ThemePreference == "" {
		update.ThemePreference = settings.ThemePreference
	}
	if update.RiskThreshold == 0 {
		update.RiskThreshold = settings.RiskThreshold
	}

	err = models.DB.Model(&settings).Select("", updateFields...).Updates(update.model(userID(c))).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}
