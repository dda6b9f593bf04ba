// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValidTransactionType reports whether t is a known transaction type.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Category represents a transaction category key. The set of categories is a
// fixed vocabulary shared with the presentation layer; entities reference
// categories by key only.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// Categories returns every valid transaction category key.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategoryOther,
	}
}

// IsValidCategory reports whether c is a known category key.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryEntertainment,
		CategoryHealth, CategoryEducation, CategoryOther:
		return true
	}
	return false
}

// Transaction represents a financial transaction in the LifeQuest system.
// Amount is always positive; the sign of the movement is carried by Type.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Category    Category
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity dated today.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	category Category,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          NewID(),
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
