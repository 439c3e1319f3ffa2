package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
	sr_uuid "github.com/smartrisk-ai/backend/internal/uuid"
)

type BudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category the limit applies to
	Month      int             `json:"month" example:"3" minimum:"1" maximum:"12"`                // Month the limit applies to
	Year       int             `json:"year" example:"2024"`                                       // Year the limit applies to
	Amount     decimal.Decimal `json:"amount" example:"400"`                                      // The spending limit
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Month:      editable.Month,
		Year:       editable.Year,
		Amount:     editable.Amount,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/d430d7c3-d14c-4712-9336-ee56965a6673"`        // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category the limit applies to
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID: model.CategoryID,
			Month:      model.Month,
			Year:       model.Year,
			Amount:     model.Amount,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The Budget data, if creation was successful
}

type BudgetQueryFilter struct {
	CategoryID sr_uuid.UUID `form:"category"`                   // ID of the category
	Month      int          `form:"month"`                      // Month the limit applies to
	Year       int          `form:"year"`                       // Year the limit applies to
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		CategoryID: f.CategoryID.UUID,
		Month:      f.Month,
		Year:       f.Year,
	}
}
