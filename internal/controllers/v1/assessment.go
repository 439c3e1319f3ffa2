package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartrisk-ai/backend/internal/httputil"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/internal/risk"
	"golang.org/x/exp/slices"
)

// RegisterAssessmentRoutes registers the routes for assessments with
// the RouterGroup that is passed. The scorer computes the score,
// risk level and summary of every created assessment.
func RegisterAssessmentRoutes(r *gin.RouterGroup, scorer risk.Scorer) {
	// Root group
	{
		r.OPTIONS("", OptionsAssessmentList)
		r.GET("", GetAssessments)
		r.POST("", CreateAssessments(scorer))
	}

	// Assessment with ID
	{
		r.OPTIONS("/:id", OptionsAssessmentDetail)
		r.GET("/:id", GetAssessment)
		r.DELETE("/:id", DeleteAssessment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assessments
// @Success		204
// @Router			/v1/assessments [options]
func OptionsAssessmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assessments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assessments/{id} [options]
func OptionsAssessmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var assessment models.Assessment
	err = models.DB.First(&assessment, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get assessment
// @Description	Returns a specific assessment
// @Tags			Assessments
// @Produce		json
// @Success		200	{object}	AssessmentResponse
// @Failure		400	{object}	AssessmentResponse
// @Failure		404	{object}	AssessmentResponse
// @Failure		500	{object}	AssessmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assessments/{id} [get]
func GetAssessment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssessmentResponse{
			Error: &e,
		})
		return
	}

	var assessment models.Assessment
	err = models.DB.First(&assessment, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssessmentResponse{
			Error: &e,
		})
		return
	}

	data := newAssessment(c, assessment)
	c.JSON(http.StatusOK, AssessmentResponse{Data: &data})
}

// @Summary		Get assessments
// @Description	Returns a list of assessments
// @Tags			Assessments
// @Produce		json
// @Success		200	{object}	AssessmentListResponse
// @Failure		400	{object}	AssessmentListResponse
// @Failure		500	{object}	AssessmentListResponse
// @Router			/v1/assessments [get]
// @Param			applicantName	query	string	false	"Filter by applicant name"
// @Param			riskLevel		query	string	false	"Filter by risk level"
// @Param			offset			query	uint	false	"The offset of the first Assessment returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Assessments to return. Defaults to 50."
func GetAssessments(c *gin.Context) {
	var filter AssessmentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AssessmentListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct for the gorm query
	model := filter.model()

	q := models.DB.
		Order("assessments.created_at DESC").
		Where("assessments.user_id = ?", userID(c)).
		Where(&model, queryFields...)

	if filter.ApplicantName != "" {
		q = q.Where("assessments.applicant_name LIKE ?", fmt.Sprintf("%%%s%%", filter.ApplicantName))
	} else if slices.Contains(setFields, "ApplicantName") {
		q = q.Where("assessments.applicant_name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 assessments and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var assessments []models.Assessment
	err := q.Find(&assessments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssessmentListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssessmentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Assessment, 0)
	for _, assessment := range assessments {
		data = append(data, newAssessment(c, assessment))
	}

	c.JSON(http.StatusOK, AssessmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// CreateAssessments returns the handler that creates assessments with
// the passed scorer.
//
//	@Summary		Create assessments
//	@Description	Creates assessments from the list of submitted applicant data. The score, risk level and analysis summary are computed on the server and cannot be set by the caller. The response code is the highest response code number that a single assessment creation would have caused.
//	@Tags			Assessments
//	@Produce		json
//	@Success		201			{object}	AssessmentCreateResponse
//	@Failure		400			{object}	AssessmentCreateResponse
//	@Failure		500			{object}	AssessmentCreateResponse
//	@Param			assessments	body		[]AssessmentEditable	true	"Assessments"
//	@Router			/v1/assessments [post]
func CreateAssessments(scorer risk.Scorer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editables []AssessmentEditable

		// Bind data and return error if not possible
		err := httputil.BindData(c, &editables)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AssessmentCreateResponse{
				Error: &e,
			})
			return
		}

		// The final http status. Will be modified when errors occur
		status := http.StatusCreated
		r := AssessmentCreateResponse{}

		for _, editable := range editables {
			assessment := editable.model(userID(c))

			outcome := scorer.Score(c.Request.Context(), editable.input())
			assessment.AIScore = outcome.AIScore
			assessment.RiskLevel = outcome.RiskLevel
			assessment.AnalysisSummary = outcome.AnalysisSummary

			err := models.DB.Create(&assessment).Error
			// Append the error
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			data := newAssessment(c, assessment)
			r.Data = append(r.Data, AssessmentResponse{Data: &data})
		}

		c.JSON(status, r)
	}
}

// @Summary		Delete assessment
// @Description	Deletes an assessment
// @Tags			Assessments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assessments/{id} [delete]
func DeleteAssessment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var assessment models.Assessment
	err = models.DB.First(&assessment, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&assessment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
