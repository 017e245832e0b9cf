// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name           string
	Kind           entity.CategoryKind
	Classification entity.CategoryClassification
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name must not be empty",
			nil,
		)
	}

	if input.Kind != entity.CategoryKindExpense && input.Kind != entity.CategoryKindIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	if !isValidClassification(input.Classification) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidClassification,
			"classification must be 'need', 'want' or 'income'",
			domainerror.ErrInvalidClassification,
		)
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryAlreadyExists,
			"a category with this name already exists",
			domainerror.ErrCategoryAlreadyExists,
		)
	}

	category := entity.NewCategory(name, input.Kind, input.Classification)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

// isValidClassification validates the category classification.
func isValidClassification(c entity.CategoryClassification) bool {
	return c == entity.ClassificationNeed ||
		c == entity.ClassificationWant ||
		c == entity.ClassificationIncome
}
