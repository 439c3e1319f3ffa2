package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smartrisk-ai/backend/internal/models"
)

type AlertEditable struct {
	Type     models.AlertType     `json:"type" example:"overspend"`                        // What kind of event the alert is about
	Severity models.AlertSeverity `json:"severity" example:"warning"`                      // How urgent the alert is
	Message  string               `json:"message" example:"Dining spend is 40% over plan"` // Human readable alert text
	Read     bool                 `json:"read" example:"false" default:"false"`            // Whether the user has seen the alert
}

// model returns the database resource for the API representation of the editable fields
func (editable AlertEditable) model(userID uuid.UUID) models.Alert {
	return models.Alert{
		UserID:   userID,
		Type:     editable.Type,
		Severity: editable.Severity,
		Message:  editable.Message,
		Read:     editable.Read,
	}
}

type AlertLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/alerts/9a04d2cf-11e3-4c7c-8127-6e56f8d03b51"` // The alert itself
}

// Alert is the representation of an Alert in API v1.
type Alert struct {
	models.DefaultModel
	AlertEditable
	Links AlertLinks `json:"links"`
}

// newAlert returns the API v1 representation of the resource
func newAlert(c *gin.Context, model models.Alert) Alert {
	url := c.GetString(string(models.DBContextURL))

	return Alert{
		DefaultModel: model.DefaultModel,
		AlertEditable: AlertEditable{
			Type:     model.Type,
			Severity: model.Severity,
			Message:  model.Message,
			Read:     model.Read,
		},
		Links: AlertLinks{
			Self: fmt.Sprintf("%s/v1/alerts/%s", url, model.ID),
		},
	}
}

type AlertListResponse struct {
	Data       []Alert     `json:"data"`                                                          // List of alerts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AlertCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AlertResponse `json:"data"`                                                          // List of created Alerts
}

func (a *AlertCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AlertResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AlertResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this alert
	Data  *Alert  `json:"data"`                                                          // The Alert data, if creation was successful
}

type AlertQueryFilter struct {
	Type     string `form:"type"`                       // Type of the alert
	Severity string `form:"severity"`                   // Severity of the alert
	Read     bool   `form:"read"`                       // Whether the alert has been read
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Alert returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Alerts to return. Defaults to 50.
}

func (f AlertQueryFilter) model() models.Alert {
	return models.Alert{
		Type:     models.AlertType(f.Type),
		Severity: models.AlertSeverity(f.Severity),
		Read:     f.Read,
	}
}
