package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smartrisk-ai/backend/internal/models"
	sr_uuid "github.com/smartrisk-ai/backend/internal/uuid"
)

type CategoryEditable struct {
	Name     string     `json:"name" example:"Groceries"`                                           // Name of the category
	ParentID *uuid.UUID `json:"parentId" example:"2649c965-7999-4873-ae16-89d5d5fa972e" default:""` // ID of the parent category, if any
	Icon     string     `json:"icon" example:"shopping-cart" default:""`                            // Icon identifier for UIs
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID:   &userID,
		Name:     editable.Name,
		ParentID: editable.ParentID,
		Icon:     editable.Icon,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions in the category
	Rules        string `json:"rules" example:"https://example.com/api/v1/rules?category=d430d7c3-d14c-4712-9336-ee56965a6673"`               // Rules assigning the category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Global bool          `json:"global" example:"false"` // Is the category a global default visible to all users?
	Links  CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:     model.Name,
			ParentID: model.ParentID,
			Icon:     model.Icon,
		},
		Global: model.UserID == nil,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Rules:        fmt.Sprintf("%s/v1/rules?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // The Category data, if creation was successful
}

type CategoryQueryFilter struct {
	Name     string       `form:"name" filterField:"false"`   // Name contains this string
	ParentID sr_uuid.UUID `form:"parent"`                     // ID of the parent category
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	// If the parentID is nil, use an actual nil, not uuid.Nil
	var pID *uuid.UUID
	if f.ParentID != sr_uuid.Nil {
		pID = &f.ParentID.UUID
	}

	return models.Category{
		ParentID: pID,
	}
}
