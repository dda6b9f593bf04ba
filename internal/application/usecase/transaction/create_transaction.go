// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    entity.Category
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation. Recording a
// transaction awards experience; income additionally advances every
// "savings" goal by the transaction's amount, not by a fixed unit.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalAdvancer    adapter.GoalAdvancer
	awarder         adapter.ExperienceAwarder
	recordedPoints  int
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	goalAdvancer adapter.GoalAdvancer,
	awarder adapter.ExperienceAwarder,
	recordedPoints int,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		goalAdvancer:    goalAdvancer,
		awarder:         awarder,
		recordedPoints:  recordedPoints,
	}
}

// Execute performs the transaction creation. Validation happens before any
// state changes; the goal tracker is signalled before the progression ledger.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description must not be empty",
			domainerror.ErrEmptyDescription,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !entity.IsValidCategory(input.Category) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			"unknown category key",
			domainerror.ErrInvalidCategory,
		)
	}

	txn := entity.NewTransaction(input.Type, input.Amount, description, input.Category)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if txn.Type == entity.TransactionTypeIncome {
		if err := uc.goalAdvancer.AdvanceByType(ctx, entity.GoalTypeSavings, txn.Amount); err != nil {
			return nil, fmt.Errorf("failed to advance savings goals: %w", err)
		}
	}

	if err := uc.awarder.Award(ctx, uc.recordedPoints); err != nil {
		return nil, fmt.Errorf("failed to award transaction points: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}
