package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smartrisk-ai/backend/internal/models"
)

type SettingsEditable struct {
	EmailNotifications bool                   `json:"emailNotifications" example:"true" default:"false"` // Whether email notifications are enabled
	ThemePreference    models.ThemePreference `json:"themePreference" example:"dark" default:"system"`   // Preferred UI theme
	RiskThreshold      int                    `json:"riskThreshold" example:"650" default:"700"`         // Score below which assessments raise alerts
}

// model returns the database resource for the API representation of the editable fields
func (editable SettingsEditable) model(userID uuid.UUID) models.Settings {
	return models.Settings{
		UserID:             userID,
		EmailNotifications: editable.EmailNotifications,
		ThemePreference:    editable.ThemePreference,
		RiskThreshold:      editable.RiskThreshold,
	}
}

type SettingsLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings"` // The settings themselves
}

// Settings is the representation of the user Settings in API v1.
type Settings struct {
	models.DefaultModel
	SettingsEditable
	Links SettingsLinks `json:"links"`
}

// newSettings returns the API v1 representation of the resource
func newSettings(c *gin.Context, model models.Settings) Settings {
	url := c.GetString(string(models.DBContextURL))

	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			EmailNotifications: model.EmailNotifications,
			ThemePreference:    model.ThemePreference,
			RiskThreshold:      model.RiskThreshold,
		},
		Links: SettingsLinks{
			Self: fmt.Sprintf("%s/v1/settings", url),
		},
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                                // The Settings data
}
