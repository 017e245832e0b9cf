// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// SavingsGoalModel represents the savings_goals table in the database.
type SavingsGoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Progress     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate   *time.Time      `gorm:"type:timestamp"`
	Favorite     bool            `gorm:"default:false"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		Progress:     m.Progress,
		TargetDate:   m.TargetDate,
		Favorite:     m.Favorite,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain SavingsGoal entity.
func SavingsGoalFromEntity(goal *entity.SavingsGoal) *SavingsGoalModel {
	return &SavingsGoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		Progress:     goal.Progress,
		TargetDate:   goal.TargetDate,
		Favorite:     goal.Favorite,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
