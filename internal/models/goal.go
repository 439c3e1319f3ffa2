package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Goal is a savings goal of a user.
type Goal struct {
	DefaultModel
	User          User      `json:"-"`
	UserID        uuid.UUID `gorm:"index"`
	Name          string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline      *time.Time
	CategoryID    *uuid.UUID
	Status        GoalStatus `gorm:"index"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	if g.Status == "" {
		g.Status = GoalStatusActive
	}

	if !slices.Contains([]GoalStatus{GoalStatusActive, GoalStatusCompleted, GoalStatusPaused}, g.Status) {
		return ErrGoalStatusInvalid
	}

	if g.CategoryID != nil && *g.CategoryID == uuid.Nil {
		g.CategoryID = nil
	}

	return nil
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	if toSave.CategoryID != nil {
		return CheckCategoryVisible(tx, *toSave.CategoryID, toSave.UserID)
	}

	return nil
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Goal)

	if tx.Statement.Changed("CategoryID") && toSave.CategoryID != nil {
		return CheckCategoryVisible(tx, *toSave.CategoryID, g.UserID)
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrGoalTargetNotPositive
	}

	return nil
}
