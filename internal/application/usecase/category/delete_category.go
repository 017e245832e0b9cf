// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion. Categories still referenced by
// transactions or budgets are protected.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return err
	}

	referenced, err := uc.categoryRepo.IsReferenced(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to check category references: %w", err)
	}
	if referenced {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"category is referenced by transactions or budgets",
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
