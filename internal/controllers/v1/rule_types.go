package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smartrisk-ai/backend/internal/models"
	sr_uuid "github.com/smartrisk-ai/backend/internal/uuid"
)

type RuleEditable struct {
	Pattern    string    `json:"pattern" example:"STARBUCKS"`                               // Pattern matched against the transaction description and merchant, case-insensitive
	CategoryID uuid.UUID `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category assigned on a match
	Priority   uint      `json:"priority" example:"10" default:"0"`                         // Rules with a higher priority are matched first
}

// model returns the database resource for the API representation of the editable fields
func (editable RuleEditable) model(userID uuid.UUID) models.Rule {
	return models.Rule{
		UserID:     userID,
		Pattern:    editable.Pattern,
		CategoryID: editable.CategoryID,
		Priority:   editable.Priority,
	}
}

type RuleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/rules/d430d7c3-d14c-4712-9336-ee56965a6673"`          // The rule itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category the rule assigns
}

// Rule is the representation of a Rule in API v1.
type Rule struct {
	models.DefaultModel
	RuleEditable
	Links RuleLinks `json:"links"`
}

// newRule returns the API v1 representation of the resource
func newRule(c *gin.Context, model models.Rule) Rule {
	url := c.GetString(string(models.DBContextURL))

	return Rule{
		DefaultModel: model.DefaultModel,
		RuleEditable: RuleEditable{
			Pattern:    model.Pattern,
			CategoryID: model.CategoryID,
			Priority:   model.Priority,
		},
		Links: RuleLinks{
			Self:     fmt.Sprintf("%s/v1/rules/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type RuleListResponse struct {
	Data       []Rule      `json:"data"`                                                          // List of rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RuleCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RuleResponse `json:"data"`                                                          // List of created Rules
}

func (r *RuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RuleResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this rule
	Data  *Rule   `json:"data"`                                                          // The Rule data, if creation was successful
}

type RuleQueryFilter struct {
	Pattern    string       `form:"pattern" filterField:"false"` // Pattern contains this string
	CategoryID sr_uuid.UUID `form:"category"`                    // ID of the assigned category
	Priority   uint         `form:"priority"`                    // Priority of the rule
	Offset     uint         `form:"offset" filterField:"false"`  // The offset of the first Rule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`   // Maximum number of Rules to return. Defaults to 50.
}

func (f RuleQueryFilter) model() models.Rule {
	return models.Rule{
		CategoryID: f.CategoryID.UUID,
		Priority:   f.Priority,
	}
}
