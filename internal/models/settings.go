package models

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

// Settings holds the per-user preferences. There is exactly one row per user,
// created on first read.
type Settings struct {
	DefaultModel
	User               User      `json:"-"`
	UserID             uuid.UUID `gorm:"uniqueIndex"`
	EmailNotifications bool
	ThemePreference    ThemePreference
	RiskThreshold      int
}

func (s *Settings) BeforeSave(_ *gorm.DB) error {
	if s.ThemePreference == "" {
		s.ThemePreference = ThemeSystem
	}

	if !slices.Contains([]ThemePreference{ThemeLight, ThemeDark, ThemeSystem}, s.ThemePreference) {
		return ErrThemeInvalid
	}

	if s.RiskThreshold == 0 {
		s.RiskThreshold = 700
	}

	if s.RiskThreshold < 300 || s.RiskThreshold > 850 {
		return ErrRiskThresholdInvalid
	}

	return nil
}
