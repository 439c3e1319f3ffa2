package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartrisk-ai/backend/internal/models"
)

type AccountEditable struct {
	Name        string             `json:"name" example:"Everyday checking"`              // Name of the account
	Institution string             `json:"institution" example:"Example Bank" default:""` // The bank or broker the account is held at
	Type        models.AccountType `json:"type" example:"checking"`                       // Type of the account
	Last4       string             `json:"last4" example:"4321" default:""`               // Last four digits of the account number
	Balance     decimal.Decimal    `json:"balance" example:"1732.45"`                     // Current balance of the account
	Currency    string             `json:"currency" example:"USD" default:"USD"`          // Currency the balance is denominated in
	Connected   bool               `json:"connected" example:"false" default:"false"`     // Is the account connected to a data provider?
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model(userID uuid.UUID) models.Account {
	return models.Account{
		UserID:      userID,
		Name:        editable.Name,
		Institution: editable.Institution,
		Type:        editable.Type,
		Last4:       editable.Last4,
		Balance:     editable.Balance,
		Currency:    editable.Currency,
		Connected:   editable.Connected,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/d430d7c3-d14c-4712-9336-ee56965a6673"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions referencing the account
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:        model.Name,
			Institution: model.Institution,
			Type:        model.Type,
			Last4:       model.Last4,
			Balance:     model.Balance,
			Currency:    model.Currency,
			Connected:   model.Connected,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
	Data  *Account `json:"data"`                                                          // The Account data, if creation was successful
}

type AccountQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // Name contains this string
	Institution string `form:"institution" filterField:"false"` // Institution contains this string
	Type        string `form:"type"`                            // Type of the account
	Currency    string `form:"currency"`                        // Currency of the account
	Connected   bool   `form:"connected"`                       // Is the account connected to a data provider?
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Account returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Type:      models.AccountType(f.Type),
		Currency:  f.Currency,
		Connected: f.Connected,
	}
}
