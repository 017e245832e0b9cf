// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List retrieves all categories, optionally filtered by kind.
	List(ctx context.Context, kind *entity.CategoryKind) ([]*entity.Category, error)

	// ExistsByName checks whether a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// IsReferenced reports whether any transaction or budget references the category.
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
