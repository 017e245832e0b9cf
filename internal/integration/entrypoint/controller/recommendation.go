// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/centsible/backend/internal/application/usecase/recommendation"
	domainerror "github.com/centsible/backend/internal/domain/error"
	"github.com/centsible/backend/internal/integration/entrypoint/dto"
	"github.com/centsible/backend/internal/integration/entrypoint/middleware"
)

// RecommendationController handles savings recommendation endpoints.
type RecommendationController struct {
	getUseCase *recommendation.GetRecommendationsUseCase
}

// NewRecommendationController creates a new recommendation controller instance.
func NewRecommendationController(getUseCase *recommendation.GetRecommendationsUseCase) *RecommendationController {
	return &RecommendationController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /recommendations requests.
func (c *RecommendationController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), recommendation.GetRecommendationsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate recommendations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RecommendationsResponse{
		Recommendations: output.Recommendations,
	})
}
