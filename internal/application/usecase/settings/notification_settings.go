// Package settings contains user preference use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
)

// NotificationSettings holds the per-user notification toggles.
type NotificationSettings struct {
	BudgetNotificationsEnabled bool
	GoalNotificationsEnabled   bool
}

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of reading settings.
type GetSettingsOutput struct {
	Settings NotificationSettings
}

// GetSettingsUseCase reads the notification toggles. Keys never written
// report as enabled.
type GetSettingsUseCase struct {
	preferences adapter.PreferenceStore
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(preferences adapter.PreferenceStore) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		preferences: preferences,
	}
}

// Execute reads both notification toggles.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	budgets, err := uc.preferences.GetBool(ctx, input.UserID, adapter.PrefBudgetNotificationsEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to read budget notification setting: %w", err)
	}

	goals, err := uc.preferences.GetBool(ctx, input.UserID, adapter.PrefGoalNotificationsEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to read goal notification setting: %w", err)
	}

	return &GetSettingsOutput{
		Settings: NotificationSettings{
			BudgetNotificationsEnabled: budgets,
			GoalNotificationsEnabled:   goals,
		},
	}, nil
}

// UpdateSettingsInput represents the input for updating settings. Nil fields
// are left unchanged.
type UpdateSettingsInput struct {
	UserID                     uuid.UUID
	BudgetNotificationsEnabled *bool
	GoalNotificationsEnabled   *bool
}

// UpdateSettingsOutput represents the output of updating settings.
type UpdateSettingsOutput struct {
	Settings NotificationSettings
}

// UpdateSettingsUseCase writes the notification toggles.
type UpdateSettingsUseCase struct {
	preferences adapter.PreferenceStore
	getSettings *GetSettingsUseCase
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(
	preferences adapter.PreferenceStore,
	getSettings *GetSettingsUseCase,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		preferences: preferences,
		getSettings: getSettings,
	}
}

// Execute writes the provided toggles and returns the resulting settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.BudgetNotificationsEnabled != nil {
		if err := uc.preferences.SetBool(ctx, input.UserID, adapter.PrefBudgetNotificationsEnabled, *input.BudgetNotificationsEnabled); err != nil {
			return nil, fmt.Errorf("failed to update budget notification setting: %w", err)
		}
	}

	if input.GoalNotificationsEnabled != nil {
		if err := uc.preferences.SetBool(ctx, input.UserID, adapter.PrefGoalNotificationsEnabled, *input.GoalNotificationsEnabled); err != nil {
			return nil, fmt.Errorf("failed to update goal notification setting: %w", err)
		}
	}

	current, err := uc.getSettings.Execute(ctx, GetSettingsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{Settings: current.Settings}, nil
}
