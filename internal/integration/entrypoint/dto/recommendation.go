// Package dto defines data transfer objects for API requests and responses.
package dto

// RecommendationsResponse represents the response for savings recommendations.
type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}
