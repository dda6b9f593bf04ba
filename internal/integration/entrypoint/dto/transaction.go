// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifequest/backend/internal/application/usecase/transaction"
	"github.com/lifequest/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions,
// including derived totals.
type TransactionListResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	TotalIncome   float64               `json:"total_income"`
	TotalExpenses float64               `json:"total_expenses"`
	Balance       float64               `json:"balance"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount.InexactFloat64(),
		Description: t.Description,
		Category:    string(t.Category),
		Date:        t.Date.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionListResponse converts a list use case output to a
// TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions:  make([]TransactionResponse, 0, len(output.Transactions)),
		TotalIncome:   output.TotalIncome.InexactFloat64(),
		TotalExpenses: output.TotalExpenses.InexactFloat64(),
		Balance:       output.Balance.InexactFloat64(),
	}
	for _, t := range output.Transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(t))
	}
	return response
}
