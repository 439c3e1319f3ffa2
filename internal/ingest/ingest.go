// Package ingest implements bulk transaction ingestion.
//
// Records are processed independently and in input order. A failing record
// is reported against its index and never aborts the batch. Only batch
// shape violations reject the whole request.
package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/categorizer"
	"github.com/smartrisk-ai/backend/internal/models"
	"gorm.io/gorm"
)

// MaxRecords is the maximum number of records accepted in one request.
const MaxRecords = 1000

var (
	ErrBatchEmpty    = errors.New("the transactions array must not be empty")
	ErrBatchTooLarge = errors.New("a maximum of 1000 transactions is allowed per request")
)

// Record is a single transaction row as submitted by the client.
//
// The date is either a string timestamp or a number of milliseconds since
// the Unix epoch, which is why it is not typed as time.Time here.
type Record struct {
	Date        any              `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
	Merchant    string           `json:"merchant"`
}

// RecordError reports why a single record was not created.
type RecordError struct {
	Index int    `json:"index" example:"3"`
	Error string `json:"error" example:"description must be 1-200 characters"`
}

// Result collects the outcomes of one batch: the transactions that were
// created and the per-index errors. Both can be non-empty at the same
// time, partial failure is a regular result and not an error.
type Result struct {
	Created []models.Transaction
	Errors  []RecordError
}

// ValidateBatch checks the record count against the batch shape bounds.
func ValidateBatch(count int) error {
	if count == 0 {
		return ErrBatchEmpty
	}

	if count > MaxRecords {
		return ErrBatchTooLarge
	}

	return nil
}

// Process creates a transaction for every valid record. The rules must
// already be in matching order, they are fetched once per request and
// shared across all records.
func Process(db *gorm.DB, rules []models.Rule, userID, accountID uuid.UUID, records []Record) Result {
	result := Result{Created: []models.Transaction{}, Errors: []RecordError{}}

	for i, record := range records {
		transaction, err := buildTransaction(userID, accountID, record)
		if err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Error: err.Error()})
			continue
		}

		transaction.CategoryID = categorizer.Categorize(rules, transaction)

		if err := db.Create(&transaction).Error; err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Error: err.Error()})
			continue
		}

		result.Created = append(result.Created, transaction)
	}

	return result
}

// buildTransaction validates a record and converts it into a transaction.
// The type is not set here, it is derived from the amount sign when the
// transaction is saved.
func buildTransaction(userID, accountID uuid.UUID, record Record) (models.Transaction, error) {
	if record.Date == nil {
		return models.Transaction{}, errors.New("date is required")
	}

	if record.Amount == nil {
		return models.Transaction{}, errors.New("amount must be a number")
	}

	description := strings.TrimSpace(record.Description)
	if len(description) < 1 || len(description) > 200 {
		return models.Transaction{}, errors.New("description must be 1-200 characters")
	}

	merchant := strings.TrimSpace(record.Merchant)
	if len(merchant) > 100 {
		return models.Transaction{}, errors.New("merchant must be at most 100 characters")
	}

	date, err := parseDate(record.Date)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Date:        date,
		Amount:      *record.Amount,
		Description: description,
		Merchant:    merchant,
	}, nil
}

// parseDate accepts an RFC 3339 timestamp, a plain date, or milliseconds
// since the Unix epoch. JSON numbers arrive as float64.
func parseDate(value any) (time.Time, error) {
	switch date := value.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339, date); err == nil {
			return parsed.In(time.UTC), nil
		}

		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			return parsed.In(time.UTC), nil
		}

		return time.Time{}, errors.New("invalid date format")
	case float64:
		return time.UnixMilli(int64(date)).In(time.UTC), nil
	default:
		return time.Time{}, errors.New("date must be a string or number")
	}
}
