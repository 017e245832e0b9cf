// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for savings goal creation.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	TargetDate   *time.Time      `json:"target_date,omitempty"`
}

// UpdateGoalRequest represents the request body for savings goal update.
type UpdateGoalRequest struct {
	Name         *string          `json:"name,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	TargetDate   *time.Time       `json:"target_date,omitempty"`
	Favorite     *bool            `json:"favorite,omitempty"`
}

// ContributeRequest represents the request body for a goal contribution.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Progress     decimal.Decimal `json:"progress"`
	TargetDate   *time.Time      `json:"target_date,omitempty"`
	Favorite     bool            `json:"favorite"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GoalListResponse represents the response for listing savings goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ContributionResponse represents a single contribution in API responses.
type ContributionResponse struct {
	ID     string          `json:"id"`
	GoalID string          `json:"goal_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// GoalDetailResponse represents a goal with its contribution history.
type GoalDetailResponse struct {
	Goal          GoalResponse           `json:"goal"`
	Contributions []ContributionResponse `json:"contributions"`
}

// ContributeResponse represents the response for a goal contribution.
type ContributeResponse struct {
	Goal         GoalResponse         `json:"goal"`
	Contribution ContributionResponse `json:"contribution"`
}

// ToGoalResponse converts a domain SavingsGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:           g.ID.String(),
		UserID:       g.UserID.String(),
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Progress:     g.Progress,
		TargetDate:   g.TargetDate,
		Favorite:     g.Favorite,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of savings goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.SavingsGoal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}

// ToContributionResponse converts a domain Contribution entity to a ContributionResponse DTO.
func ToContributionResponse(c *entity.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:     c.ID.String(),
		GoalID: c.GoalID.String(),
		Amount: c.Amount,
		Date:   c.Date,
	}
}

// ToGoalDetailResponse converts a goal and its contributions to GoalDetailResponse.
func ToGoalDetailResponse(g *entity.SavingsGoal, contributions []*entity.Contribution) GoalDetailResponse {
	contributionResponses := make([]ContributionResponse, len(contributions))
	for i, c := range contributions {
		contributionResponses[i] = ToContributionResponse(c)
	}
	return GoalDetailResponse{
		Goal:          ToGoalResponse(g),
		Contributions: contributionResponses,
	}
}
