package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartrisk-ai/backend/internal/httputil"
	"github.com/smartrisk-ai/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterAlertRoutes registers the routes for alerts with
// the RouterGroup that is passed.
func RegisterAlertRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAlertList)
		r.GET("", GetAlerts)
		r.POST("", CreateAlerts)
	}

	// Alert with ID
	{
		r.OPTIONS("/:id", OptionsAlertDetail)
		r.GET("/:id", GetAlert)
		r.PATCH("/:id", UpdateAlert)
		r.DELETE("/:id", DeleteAlert)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts [options]
func OptionsAlertList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/alerts/{id} [options]
func OptionsAlertDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Alert{})
}

// @Summary		Get alert
// @Description	Returns a specific alert
// @Tags			Alerts
// @Produce		json
// @Success		200	{object}	AlertResponse
// @Failure		400	{object}	AlertResponse
// @Failure		404	{object}	AlertResponse
// @Failure		500	{object}	AlertResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/alerts/{id} [get]
func GetAlert(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	var alert models.Alert
	err = models.DB.First(&alert, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	data := newAlert(c, alert)
	c.JSON(http.StatusOK, AlertResponse{Data: &data})
}

// @Summary		Get alerts
// @Description	Returns a list of alerts
// @Tags			Alerts
// @Produce		json
// @Success		200	{object}	AlertListResponse
// @Failure		400	{object}	AlertListResponse
// @Failure		500	{object}	AlertListResponse
// @Router			/v1/alerts [get]
// @Param			type		query	string	false	"Filter by type"
// @Param			severity	query	string	false	"Filter by severity"
// @Param			read		query	bool	false	"Filter by read state"
// @Param			offset		query	uint	false	"The offset of the first Alert returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Alerts to return. Defaults to 50."
func GetAlerts(c *gin.Context) {
	var filter AlertQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AlertListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct for the gorm query
	model := filter.model()

	// Newest alerts first
	q := models.DB.
		Order("alerts.created_at DESC").
		Where("alerts.user_id = ?", userID(c)).
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 alerts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var alerts []models.Alert
	err := q.Find(&alerts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Alert, 0)
	for _, alert := range alerts {
		data = append(data, newAlert(c, alert))
	}

	c.JSON(http.StatusOK, AlertListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create alerts
// @Description	Creates alerts from the list of submitted alert data. The response code is the highest response code number that a single alert creation would have caused. If it is not equal to 201, at least one alert has an error.
// @Tags			Alerts
// @Produce		json
// @Success		201		{object}	AlertCreateResponse
// @Failure		400		{object}	AlertCreateResponse
// @Failure		500		{object}	AlertCreateResponse
// @Param			alerts	body		[]AlertEditable	true	"Alerts"
// @Router			/v1/alerts [post]
func CreateAlerts(c *gin.Context) {
	var editables []AlertEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AlertCreateResponse{}

	for _, editable := range editables {
		alert := editable.model(userID(c))
		err := models.DB.Create(&alert).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAlert(c, alert)
		r.Data = append(r.Data, AlertResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update alert
// @Description	Updates an existing alert. Only values to be updated need to be specified.
// @Tags			Alerts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AlertResponse
// @Failure		400		{object}	AlertResponse
// @Failure		404		{object}	AlertResponse
// @Failure		500		{object}	AlertResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			alert	body		AlertEditable	true	"Alert"
// @Router			/v1/alerts/{id} [patch]
func UpdateAlert(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	var alert models.Alert
	err = models.DB.First(&alert, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AlertEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	var update AlertEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	// Type and severity are validated on every save, so a partial
	// update keeps the stored values when they are not in the body
	if update.Type == "" {
		update.Type = alert.Type
	}
	if update.Severity == "" {
		update.Severity = alert.Severity
	}

	err = models.DB.Model(&alert).Select("", updateFields...).Updates(update.model(userID(c))).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	data := newAlert(c, alert)
	c.JSON(http.StatusOK, AlertResponse{Data: &data})
}

// @Summary		Delete alert
// @Description	Deletes an alert
// @Tags			Alerts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/alerts/{id} [delete]
func DeleteAlert(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var alert models.Alert
	err = models.DB.First(&alert, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&alert).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
