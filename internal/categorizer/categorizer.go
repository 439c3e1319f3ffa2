// Package categorizer implements rule based transaction categorization.
//
// Rules are matched against the transaction description and merchant by
// case-insensitive substring containment. Rules with higher priority are
// consulted first and the first matching rule wins.
package categorizer

import (
	"strings"

	"github.com/google/uuid"
	"github.com/smartrisk-ai/backend/internal/models"
	"gorm.io/gorm"
)

// Haystack builds the string rules are matched against: the description
// and the merchant, joined by a single space, in lower case.
func Haystack(description, merchant string) string {
	return strings.ToLower(description + " " + merchant)
}

// Match returns the category of the first rule whose pattern is contained
// in the haystack, or nil when no rule matches. The rules must already be
// ordered by descending priority.
func Match(rules []models.Rule, haystack string) *uuid.UUID {
	for _, rule := range rules {
		if strings.Contains(haystack, strings.ToLower(rule.Pattern)) {
			id := rule.CategoryID
			return &id
		}
	}

	return nil
}

// RulesForUser loads all rules of a user in matching order.
//
// Ties on priority are broken by creation time and then by ID so that the
// result is deterministic for equal priorities.
func RulesForUser(db *gorm.DB, userID uuid.UUID) ([]models.Rule, error) {
	var rules []models.Rule
	err := db.
		Where(&models.Rule{UserID: userID}).
		Order("priority DESC, created_at ASC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// Categorize matches the transaction against the rules and returns the
// category to assign, or nil when no rule matches.
func Categorize(rules []models.Rule, transaction models.Transaction) *uuid.UUID {
	return Match(rules, Haystack(transaction.Description, transaction.Merchant))
}

// Apply stores the matched category on the transaction. The update is
// scoped by the transaction ID and its owner so that a match can never
// modify another user's transaction.
func Apply(db *gorm.DB, transaction models.Transaction, categoryID uuid.UUID) error {
	return db.Model(&transaction).
		Where("user_id = ?", transaction.UserID).
		Select("", "CategoryID").
		Updates(models.Transaction{CategoryID: &categoryID}).Error
}
