// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
	"github.com/centsible/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new savings goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a savings goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"savings goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all savings goals for a given user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates a goal's name, target amount, target date and favorite flag.
func (r *goalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// AddContribution appends the contribution record and increments the goal's
// progress inside one database transaction. Either both writes commit or
// neither does, so progress can never drift from the contribution log.
func (r *goalRepository) AddContribution(ctx context.Context, goal *entity.SavingsGoal, contribution *entity.Contribution) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contributionModel := model.ContributionFromEntity(contribution)
		if err := tx.Create(contributionModel).Error; err != nil {
			return err
		}

		result := tx.Model(&model.SavingsGoalModel{}).
			Where("id = ?", goal.ID).
			Updates(map[string]interface{}{
				"progress":   gorm.Expr("progress + ?", contribution.Amount),
				"updated_at": contribution.Date,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"savings goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil
	})
}

// SumContributions returns the sum of all contribution amounts for a goal.
func (r *goalRepository) SumContributions(ctx context.Context, goalID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.ContributionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("goal_id = ?", goalID).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	return row.Total, nil
}

// ListContributions retrieves a goal's contributions, newest first.
func (r *goalRepository) ListContributions(ctx context.Context, goalID uuid.UUID) ([]*entity.Contribution, error) {
	var contributionModels []model.ContributionModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date DESC").
		Find(&contributionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	contributions := make([]*entity.Contribution, len(contributionModels))
	for i, cm := range contributionModels {
		contributions[i] = cm.ToEntity()
	}
	return contributions, nil
}

// Delete removes a savings goal and its contributions from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ContributionModel{}, "goal_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SavingsGoalModel{}, "id = ?", id).Error
	})
}
