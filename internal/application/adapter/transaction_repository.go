// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create stores a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves every transaction in creation order.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Update replaces an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByType returns the sum of amounts for the given transaction type.
	// Totals are recomputed on every call, never cached.
	SumByType(ctx context.Context, transactionType entity.TransactionType) (decimal.Decimal, error)
}
