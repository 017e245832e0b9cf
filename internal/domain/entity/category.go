// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind represents the kind of category (expense or income).
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
)

// CategoryClassification groups categories into needs, wants and income.
type CategoryClassification string

const (
	ClassificationNeed   CategoryClassification = "need"
	ClassificationWant   CategoryClassification = "want"
	ClassificationIncome CategoryClassification = "income"
)

// Category represents static reference data that transactions and budgets
// point at. Many transactions and at most one budget per recurrence
// reference a category.
type Category struct {
	ID             uuid.UUID
	Name           string
	Kind           CategoryKind
	Classification CategoryClassification
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, kind CategoryKind, classification CategoryClassification) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:             uuid.New(),
		Name:           name,
		Kind:           kind,
		Classification: classification,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
