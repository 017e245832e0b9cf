// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/centsible/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name           string `json:"name" binding:"required"`
	Kind           string `json:"kind" binding:"required,oneof=expense income"`
	Classification string `json:"classification" binding:"required,oneof=need want income"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	Classification string    `json:"classification"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Kind:           string(c.Kind),
		Classification: string(c.Classification),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
