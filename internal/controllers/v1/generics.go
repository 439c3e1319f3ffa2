package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/smartrisk-ai/backend/internal/httputil"
	"github.com/smartrisk-ai/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for singletons (like /settings)
func resourceOptionsDetail[R models.Account | models.Category | models.Rule | models.Transaction | models.Budget | models.Goal | models.Alert](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// The user_id IS NULL branch keeps global categories visible, for all
	// other resources user_id is never NULL
	err = models.DB.
		Where("user_id = ? OR user_id IS NULL", userID(c)).
		First(&resource, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
