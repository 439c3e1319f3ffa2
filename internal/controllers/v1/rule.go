package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartrisk-ai/backend/internal/httputil"
	"github.com/smartrisk-ai/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterRuleRoutes registers the routes for categorization rules with
// the RouterGroup that is passed.
func RegisterRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRuleList)
		r.GET("", GetRules)
		r.POST("", CreateRules)
	}

	// Rule with ID
	{
		r.OPTIONS("/:id", OptionsRuleDetail)
		r.GET("/:id", GetRule)
		r.PATCH("/:id", UpdateRule)
		r.DELETE("/:id", DeleteRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Router			/v1/rules [options]
func OptionsRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rules/{id} [options]
func OptionsRuleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Rule{})
}

// @Summary		Get rule
// @Description	Returns a specific categorization rule
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleResponse
// @Failure		400	{object}	RuleResponse
// @Failure		404	{object}	RuleResponse
// @Failure		500	{object}	RuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rules/{id} [get]
func GetRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	data := newRule(c, rule)
	c.JSON(http.StatusOK, RuleResponse{Data: &data})
}

// @Summary		Get rules
// @Description	Returns a list of categorization rules in matching order
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleListResponse
// @Failure		400	{object}	RuleListResponse
// @Failure		500	{object}	RuleListResponse
// @Router			/v1/rules [get]
// @Param			pattern		query	string	false	"Filter by pattern"
// @Param			category	query	string	false	"Filter by assigned category ID"
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			offset		query	uint	false	"The offset of the first Rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Rules to return. Defaults to 50."
func GetRules(c *gin.Context) {
	var filter RuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RuleListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct for the gorm query
	model := filter.model()

	// The list is returned in matching order so that clients can display
	// the rules the way the categorizer evaluates them
	q := models.DB.
		Order("rules.priority DESC, rules.created_at ASC, rules.id ASC").
		Where("rules.user_id = ?", userID(c)).
		Where(&model, queryFields...)

	if filter.Pattern != "" {
		q = q.Where("rules.pattern LIKE ?", fmt.Sprintf("%%%s%%", filter.Pattern))
	} else if slices.Contains(setFields, "Pattern") {
		q = q.Where("rules.pattern = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.Rule
	err := q.Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Rule, 0)
	for _, rule := range rules {
		data = append(data, newRule(c, rule))
	}

	c.JSON(http.StatusOK, RuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create rules
// @Description	Creates rules from the list of submitted rule data. The response code is the highest response code number that a single rule creation would have caused. If it is not equal to 201, at least one rule has an error.
// @Tags			Rules
// @Produce		json
// @Success		201		{object}	RuleCreateResponse
// @Failure		400		{object}	RuleCreateResponse
// @Failure		500		{object}	RuleCreateResponse
// @Param			rules	body		[]RuleEditable	true	"Rules"
// @Router			/v1/rules [post]
func CreateRules(c *gin.Context) {
	var editables []RuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model(userID(c))
		err := models.DB.Create(&rule).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRule(c, rule)
		r.Data = append(r.Data, RuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update rule
// @Description	Updates an existing rule. Only values to be updated need to be specified.
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		200	{object}	RuleResponse
// @Failure		400	{object}	RuleResponse
// @Failure		404	{object}	RuleResponse
// @Failure		500	{object}	RuleResponse
// @Param			id	path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body	RuleEditable	true	"Rule"
// @Router			/v1/rules/{id} [patch]
func UpdateRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, RuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update RuleEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	// The pattern is validated on every save, keep the stored one when it
	// is not in the body
	if update.Pattern == "" {
		update.Pattern = rule.Pattern
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(update.model(rule.UserID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	data := newRule(c, rule)
	c.JSON(http.StatusOK, RuleResponse{Data: &data})
}

// @Summary		Delete rule
// @Description	Deletes a rule. Transactions already categorized by the rule keep their category.
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rules/{id} [delete]
func DeleteRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
