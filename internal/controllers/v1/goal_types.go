package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
)

type GoalEditable struct {
	Name          string            `json:"name" example:"Emergency fund"`                                        // Name of the goal
	TargetAmount  decimal.Decimal   `json:"targetAmount" example:"10000"`                                         // The amount to save
	CurrentAmount decimal.Decimal   `json:"currentAmount" example:"2500" default:"0"`                             // The amount saved so far
	Deadline      *time.Time        `json:"deadline" example:"2025-12-31T00:00:00Z" default:""`                   // Optional deadline for the goal
	CategoryID    *uuid.UUID        `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e" default:""` // Optional category the goal is tied to
	Status        models.GoalStatus `json:"status" example:"active" default:"active"`                             // Lifecycle state of the goal
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model(userID uuid.UUID) models.Goal {
	return models.Goal{
		UserID:        userID,
		Name:          editable.Name,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
		CategoryID:    editable.CategoryID,
		Status:        editable.Status,
	}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/d430d7c3-d14c-4712-9336-ee56965a6673"` // The goal itself
}

// Goal is the representation of a Goal in API v1.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:          model.Name,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
			CategoryID:    model.CategoryID,
			Status:        model.Status,
		},
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created Goals
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // The Goal data, if creation was successful
}

type GoalQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Name contains this string
	Status string `form:"status"`                     // Status of the goal
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Goal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		Status: models.GoalStatus(f.Status),
	}
}
