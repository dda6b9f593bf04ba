// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for tests.
// Transactions are kept in insertion order; sums are recomputed per call.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	for i, existing := range f.transactions {
		if existing.ID == t.ID {
			f.transactions[i] = t
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTransactionRepo) SumByType(_ context.Context, transactionType entity.TransactionType) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, t := range f.transactions {
		if t.Type == transactionType {
			sum = sum.Add(t.Amount)
		}
	}
	return sum, nil
}

// fakeAwarder records awarded points for assertions.
type fakeAwarder struct {
	awards []int
}

func (f *fakeAwarder) Award(_ context.Context, points int) error {
	f.awards = append(f.awards, points)
	return nil
}

// advanceCall records one GoalAdvancer invocation.
type advanceCall struct {
	goalType entity.GoalType
	amount   decimal.Decimal
}

// fakeGoalAdvancer records fan-out calls for assertions.
type fakeGoalAdvancer struct {
	calls []advanceCall
}

func (f *fakeGoalAdvancer) AdvanceByType(_ context.Context, goalType entity.GoalType, amount decimal.Decimal) error {
	f.calls = append(f.calls, advanceCall{goalType: goalType, amount: amount})
	return nil
}
