// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// ContributionModel represents the contributions table in the database.
// Rows are append-only.
type ContributionModel struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Goal *SavingsGoalModel `gorm:"foreignKey:GoalID;references:ID"`
}

// TableName returns the table name for the ContributionModel.
func (ContributionModel) TableName() string {
	return "contributions"
}

// ToEntity converts a ContributionModel to a domain Contribution entity.
func (m *ContributionModel) ToEntity() *entity.Contribution {
	return &entity.Contribution{
		ID:     m.ID,
		GoalID: m.GoalID,
		Amount: m.Amount,
		Date:   m.Date,
	}
}

// ContributionFromEntity creates a ContributionModel from a domain Contribution entity.
func ContributionFromEntity(contribution *entity.Contribution) *ContributionModel {
	return &ContributionModel{
		ID:     contribution.ID,
		GoalID: contribution.GoalID,
		Amount: contribution.Amount,
		Date:   contribution.Date,
	}
}
