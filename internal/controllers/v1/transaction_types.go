package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/ingest"
	"github.com/smartrisk-ai/backend/internal/models"
	sr_uuid "github.com/smartrisk-ai/backend/internal/uuid"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-01T10:00:00Z"` // Date of the transaction. Defaults to the current time

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"-14.03" multipleOf:"0.00000001"` // The amount for the transaction. Negative amounts are debits

	Description string                 `json:"description" example:"STARBUCKS #1234"`                     // Description, 1-200 characters
	Merchant    string                 `json:"merchant" example:"Starbucks" default:""`                   // Merchant name, up to 100 characters
	Type        models.TransactionType `json:"type" example:"debit" default:""`                           // Type of the transaction. Derived from the amount sign when empty
	AccountID   uuid.UUID              `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // ID of the account the transaction belongs to
	CategoryID  *uuid.UUID             `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category. When omitted, the categorization rules are applied
	Pending     bool                   `json:"pending" example:"false" default:"false"`                   // Is the transaction still pending?
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		AccountID:   editable.AccountID,
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		Merchant:    editable.Merchant,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
		Pending:     editable.Pending,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Account  string `json:"account" example:"https://example.com/api/v1/accounts/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`    // The account of the transaction
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category, if one is assigned
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	links := TransactionLinks{
		Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
	}

	if model.CategoryID != nil {
		links.Category = fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID)
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Description: model.Description,
			Merchant:    model.Merchant,
			Type:        model.Type,
			AccountID:   model.AccountID,
			CategoryID:  model.CategoryID,
			Pending:     model.Pending,
		},
		Links: links,
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

// IngestEditable is the request body for bulk statement ingestion.
type IngestEditable struct {
	AccountID uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the account the records belong to
	Records   []ingest.Record `json:"transactions"`                                             // The transaction records, at most 1000 per request
}

// IngestData reports the outcome of a bulk ingestion. Partial failure is
// a successful response, per-record problems are listed in Errors.
type IngestData struct {
	Created      []Transaction        `json:"created"`                  // The transactions that were created, in input order
	Errors       []ingest.RecordError `json:"errors"`                   // Per-record errors with the input index
	TotalCreated int                  `json:"totalCreated" example:"9"` // Number of created transactions
	TotalErrors  int                  `json:"totalErrors" example:"1"`  // Number of records that failed
}

type IngestResponse struct {
	Error *string     `json:"error" example:"a maximum of 1000 transactions is allowed per request"` // The error, if the whole batch was rejected
	Data  *IngestData `json:"data"`                                                                  // The ingestion outcome
}

type TransactionQueryFilter struct {
	Date          time.Time              `form:"date" filterField:"false"`          // Exact date. Time is ignored.
	FromDate      time.Time              `form:"fromDate" filterField:"false"`      // From this date. Time is ignored.
	UntilDate     time.Time              `form:"untilDate" filterField:"false"`     // Until this date. Time is ignored.
	Amount        decimal.Decimal        `form:"amount"`                            // Exact amount
	Description   string                 `form:"description" filterField:"false"`   // Description contains this string
	Merchant      string                 `form:"merchant" filterField:"false"`      // Merchant contains this string
	Type          models.TransactionType `form:"type"`                              // Type of the transaction
	AccountID     sr_uuid.UUID           `form:"account"`                           // ID of the account
	CategoryID    sr_uuid.UUID           `form:"category"`                          // ID of the category
	Uncategorized bool                   `form:"uncategorized" filterField:"false"` // Only transactions without a category
	Pending       bool                   `form:"pending"`                           // Is the transaction pending?
	Offset        uint                   `form:"offset" filterField:"false"`        // The offset of the first Transaction returned. Defaults to 0.
	Limit         int                    `form:"limit" filterField:"false"`         // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// If the categoryID is nil, use an actual nil, not uuid.Nil
	var cID *uuid.UUID
	if f.CategoryID != sr_uuid.Nil {
		cID = &f.CategoryID.UUID
	}

	return models.Transaction{
		Amount:     f.Amount,
		Type:       f.Type,
		AccountID:  f.AccountID.UUID,
		CategoryID: cID,
		Pending:    f.Pending,
	}
}
