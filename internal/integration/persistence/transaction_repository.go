// Package persistence implements repository interfaces for the session store.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
	"github.com/lifequest/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create stores a new transaction.
func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := model.TransactionFromEntity(txn)
	result := r.db.WithContext(ctx).Create(txnModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txnModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txnModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return txnModel.ToEntity(), nil
}

// FindAll retrieves every transaction in creation order.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var txnModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txnModels))
	for i, tm := range txnModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Update replaces an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	txnModel := model.TransactionFromEntity(txn)
	result := r.db.WithContext(ctx).Save(txnModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction. Deleting an unknown ID is a no-op.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SumByType returns the sum of amounts for the given transaction type.
// The amounts are summed in Go so they never pass through SQLite's float
// arithmetic on the way back into a decimal.
func (r *transactionRepository) SumByType(ctx context.Context, transactionType entity.TransactionType) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("type = ?", string(transactionType)).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}
