package models

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type AlertType string

const (
	AlertTypeOverspend AlertType = "overspend"
	AlertTypeCashflow  AlertType = "cashflow"
	AlertTypeBill      AlertType = "bill"
	AlertTypeUnusual   AlertType = "unusual"
	AlertTypeGoal      AlertType = "goal"
)

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Alert is a notification about a finance event for a user.
type Alert struct {
	DefaultModel
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"index"`
	Type     AlertType
	Severity AlertSeverity
	Message  string
	Read     bool `gorm:"index"`
}

func (a *Alert) BeforeSave(_ *gorm.DB) error {
	if !slices.Contains([]AlertType{AlertTypeOverspend, AlertTypeCashflow, AlertTypeBill, AlertTypeUnusual, AlertTypeGoal}, a.Type) {
		return ErrAlertTypeInvalid
	}

	if !slices.Contains([]AlertSeverity{AlertSeverityInfo, AlertSeverityWarning, AlertSeverityCritical}, a.Severity) {
		return ErrAlertSeverityInvalid
	}

	return nil
}
