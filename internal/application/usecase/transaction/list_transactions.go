// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
)

// ListTransactionsOutput represents the output of listing transactions,
// including the derived totals. Totals are recomputed on every call from the
// current collection, never stored.
type ListTransactionsOutput struct {
	Transactions  []*entity.Transaction
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// ListTransactionsUseCase handles listing transactions with derived totals.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves every transaction plus income, expense and balance totals.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	income, err := uc.transactionRepo.SumByType(ctx, entity.TransactionTypeIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	expenses, err := uc.transactionRepo.SumByType(ctx, entity.TransactionTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions:  transactions,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}
