// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/centsible/backend/internal/application/usecase/settings"

// UpdateSettingsRequest represents the request body for updating settings.
type UpdateSettingsRequest struct {
	BudgetNotificationsEnabled *bool `json:"budget_notifications_enabled,omitempty"`
	GoalNotificationsEnabled   *bool `json:"goal_notifications_enabled,omitempty"`
}

// SettingsResponse represents the notification settings in API responses.
type SettingsResponse struct {
	BudgetNotificationsEnabled bool `json:"budget_notifications_enabled"`
	GoalNotificationsEnabled   bool `json:"goal_notifications_enabled"`
}

// ToSettingsResponse converts notification settings to a SettingsResponse DTO.
func ToSettingsResponse(s settings.NotificationSettings) SettingsResponse {
	return SettingsResponse{
		BudgetNotificationsEnabled: s.BudgetNotificationsEnabled,
		GoalNotificationsEnabled:   s.GoalNotificationsEnabled,
	}
}
