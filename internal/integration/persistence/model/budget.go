// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. The
// (user_id, category_id, recurrence) triple is unique.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_user_category_recurrence"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_user_category_recurrence"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Spent      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Recurrence string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_budgets_user_category_recurrence"`
	Favorite   bool            `gorm:"default:false"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Spent:      m.Spent,
		Recurrence: entity.BudgetRecurrence(m.Recurrence),
		Favorite:   m.Favorite,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a BudgetModel with its Category to a BudgetWithCategory entity.
func (m *BudgetModel) ToEntityWithCategory() *entity.BudgetWithCategory {
	result := &entity.BudgetWithCategory{
		Budget: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Spent:      budget.Spent,
		Recurrence: string(budget.Recurrence),
		Favorite:   budget.Favorite,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
