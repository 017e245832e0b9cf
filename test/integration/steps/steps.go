// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

const defaultPassword = "supersecret1"

// registerAuthSteps registers registration and login steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I register as "([^"]*)" with password "([^"]*)"$`, iRegisterAs)
	ctx.Step(`^I am registered as "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I login as "([^"]*)" with password "([^"]*)"$`, iLoginAs)
}

// registerCategorySteps registers category setup steps.
func registerCategorySteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a category "([^"]*)" of kind "([^"]*)" exists$`, aCategoryExists)
}

// registerBudgetSteps registers budget and transaction steps.
func registerBudgetSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a "([^"]*)" budget of "([^"]*)" for "([^"]*)" exists$`, aBudgetExists)
	ctx.Step(`^I record an expense of "([^"]*)" in "([^"]*)"$`, iRecordAnExpense)
	ctx.Step(`^I delete the last transaction$`, iDeleteTheLastTransaction)
	ctx.Step(`^the response includes an? "([^"]*)" alert for "([^"]*)"$`, theResponseIncludesAnAlert)
	ctx.Step(`^the response includes no alerts$`, theResponseIncludesNoAlerts)
	ctx.Step(`^the budget for "([^"]*)" shows spent "([^"]*)"$`, theBudgetShowsSpent)
}

// registerGoalSteps registers savings goal and reminder steps.
func registerGoalSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a savings goal "([^"]*)" with target "([^"]*)" exists$`, aSavingsGoalExists)
	ctx.Step(`^I contribute "([^"]*)" to "([^"]*)"$`, iContributeTo)
	ctx.Step(`^the goal "([^"]*)" has progress "([^"]*)"$`, theGoalHasProgress)
	ctx.Step(`^a day passes$`, aDayPasses)
	ctx.Step(`^the reminder delay elapses$`, theReminderDelayElapses)
	ctx.Step(`^the first armed reminder fires$`, theFirstArmedReminderFires)
	ctx.Step(`^the last armed reminder fires$`, theLastArmedReminderFires)
	ctx.Step(`^a reminder for "([^"]*)" was delivered$`, aReminderWasDelivered)
	ctx.Step(`^no reminder was delivered$`, noReminderWasDelivered)
}

// registerSettingsSteps registers notification settings steps.
func registerSettingsSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I disable budget notifications$`, iDisableBudgetNotifications)
	ctx.Step(`^I disable goal notifications$`, iDisableGoalNotifications)
}

// registerRecommendationSteps registers recommendation steps.
func registerRecommendationSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I request recommendations$`, iRequestRecommendations)
	ctx.Step(`^the response includes (\d+) recommendations$`, theResponseIncludesRecommendations)
}

// registerResponseSteps registers generic response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// doRequest sends a JSON request through the test server and captures the response.
func doRequest(tc *TestContext, method, endpoint string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// parseResponse unmarshals the last response body into out.
func parseResponse(tc *TestContext, out any) error {
	if err := json.Unmarshal(tc.responseBody, out); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w. Body: %s", err, string(tc.responseBody))
	}
	return nil
}

func expectStatus(tc *TestContext, want int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != want {
		return fmt.Errorf("expected status %d, got %d. Body: %s", want, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iRegisterAs(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if err := doRequest(tc, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    email,
		"name":     strings.Split(email, "@")[0],
		"password": password,
	}); err != nil {
		return err
	}

	if tc.response.StatusCode == http.StatusCreated {
		var auth struct {
			Token string `json:"token"`
		}
		if err := parseResponse(tc, &auth); err != nil {
			return err
		}
		tc.token = auth.Token
	}
	return nil
}

func iAmRegisteredAs(ctx context.Context, email string) error {
	if err := iRegisterAs(ctx, email, defaultPassword); err != nil {
		return err
	}
	return expectStatus(GetTestContext(ctx), http.StatusCreated)
}

func iLoginAs(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if err := doRequest(tc, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}); err != nil {
		return err
	}

	if tc.response.StatusCode == http.StatusOK {
		var auth struct {
			Token string `json:"token"`
		}
		if err := parseResponse(tc, &auth); err != nil {
			return err
		}
		tc.token = auth.Token
	}
	return nil
}

func aCategoryExists(ctx context.Context, name, kind string) error {
	tc := GetTestContext(ctx)

	classification := "need"
	if kind == "income" {
		classification = "income"
	}

	if err := doRequest(tc, http.MethodPost, "/api/v1/categories", map[string]string{
		"name":           name,
		"kind":           kind,
		"classification": classification,
	}); err != nil {
		return err
	}
	if err := expectStatus(tc, http.StatusCreated); err != nil {
		return err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := parseResponse(tc, &created); err != nil {
		return err
	}
	tc.categories[name] = created.ID
	return nil
}

func aBudgetExists(ctx context.Context, recurrence, amount, categoryName string) error {
	tc := GetTestContext(ctx)

	categoryID, ok := tc.categories[categoryName]
	if !ok {
		return fmt.Errorf("unknown category %q", categoryName)
	}

	if err := doRequest(tc, http.MethodPost, "/api/v1/budgets", map[string]any{
		"category_id": categoryID,
		"amount":      json.Number(amount),
		"recurrence":  recurrence,
	}); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusCreated)
}

func iRecordAnExpense(ctx context.Context, amount, categoryName string) error {
	tc := GetTestContext(ctx)

	categoryID, ok := tc.categories[categoryName]
	if !ok {
		return fmt.Errorf("unknown category %q", categoryName)
	}

	if err := doRequest(tc, http.MethodPost, "/api/v1/transactions", map[string]any{
		"category_id": categoryID,
		"amount":      json.Number(amount),
		"date":        tc.clock.Now(),
		"description": "test expense",
		"kind":        "expense",
	}); err != nil {
		return err
	}

	if tc.response.StatusCode == http.StatusCreated {
		var created struct {
			Transaction struct {
				ID string `json:"id"`
			} `json:"transaction"`
		}
		if err := parseResponse(tc, &created); err != nil {
			return err
		}
		tc.lastTxnID = created.Transaction.ID
	}
	return nil
}

func iDeleteTheLastTransaction(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastTxnID == "" {
		return fmt.Errorf("no transaction was recorded")
	}
	if err := doRequest(tc, http.MethodDelete, "/api/v1/transactions/"+tc.lastTxnID, nil); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

type alertsEnvelope struct {
	Alerts []struct {
		Kind         string `json:"kind"`
		CategoryName string `json:"category_name"`
	} `json:"alerts"`
}

func theResponseIncludesAnAlert(ctx context.Context, kind, categoryName string) error {
	tc := GetTestContext(ctx)

	var envelope alertsEnvelope
	if err := parseResponse(tc, &envelope); err != nil {
		return err
	}
	for _, alert := range envelope.Alerts {
		if alert.Kind == kind && alert.CategoryName == categoryName {
			return nil
		}
	}
	return fmt.Errorf("no %q alert for %q in response. Body: %s", kind, categoryName, string(tc.responseBody))
}

func theResponseIncludesNoAlerts(ctx context.Context) error {
	tc := GetTestContext(ctx)

	var envelope alertsEnvelope
	if err := parseResponse(tc, &envelope); err != nil {
		return err
	}
	if len(envelope.Alerts) != 0 {
		return fmt.Errorf("expected no alerts, got %d. Body: %s", len(envelope.Alerts), string(tc.responseBody))
	}
	return nil
}

func theBudgetShowsSpent(ctx context.Context, categoryName, want string) error {
	tc := GetTestContext(ctx)

	if err := doRequest(tc, http.MethodGet, "/api/v1/budgets", nil); err != nil {
		return err
	}
	if err := expectStatus(tc, http.StatusOK); err != nil {
		return err
	}

	var list struct {
		Budgets []struct {
			Spent    decimal.Decimal `json:"spent"`
			Category *struct {
				Name string `json:"name"`
			} `json:"category"`
		} `json:"budgets"`
	}
	if err := parseResponse(tc, &list); err != nil {
		return err
	}

	wantSpent, err := decimal.NewFromString(want)
	if err != nil {
		return fmt.Errorf("invalid expected amount %q: %w", want, err)
	}

	for _, b := range list.Budgets {
		if b.Category != nil && b.Category.Name == categoryName {
			if !b.Spent.Equal(wantSpent) {
				return fmt.Errorf("expected spent %s for %q, got %s", want, categoryName, b.Spent)
			}
			return nil
		}
	}
	return fmt.Errorf("no budget for category %q in response. Body: %s", categoryName, string(tc.responseBody))
}

func aSavingsGoalExists(ctx context.Context, name, target string) error {
	tc := GetTestContext(ctx)

	if err := doRequest(tc, http.MethodPost, "/api/v1/goals", map[string]any{
		"name":          name,
		"target_amount": json.Number(target),
	}); err != nil {
		return err
	}
	if err := expectStatus(tc, http.StatusCreated); err != nil {
		return err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := parseResponse(tc, &created); err != nil {
		return err
	}
	tc.goals[name] = created.ID
	return nil
}

func iContributeTo(ctx context.Context, amount, goalName string) error {
	tc := GetTestContext(ctx)

	goalID, ok := tc.goals[goalName]
	if !ok {
		return fmt.Errorf("unknown goal %q", goalName)
	}

	return doRequest(tc, http.MethodPost, "/api/v1/goals/"+goalID+"/contributions", map[string]any{
		"amount": json.Number(amount),
	})
}

func theGoalHasProgress(ctx context.Context, goalName, want string) error {
	tc := GetTestContext(ctx)

	goalID, ok := tc.goals[goalName]
	if !ok {
		return fmt.Errorf("unknown goal %q", goalName)
	}

	if err := doRequest(tc, http.MethodGet, "/api/v1/goals/"+goalID, nil); err != nil {
		return err
	}
	if err := expectStatus(tc, http.StatusOK); err != nil {
		return err
	}

	var detail struct {
		Goal struct {
			Progress decimal.Decimal `json:"progress"`
		} `json:"goal"`
	}
	if err := parseResponse(tc, &detail); err != nil {
		return err
	}

	wantProgress, err := decimal.NewFromString(want)
	if err != nil {
		return fmt.Errorf("invalid expected amount %q: %w", want, err)
	}
	if !detail.Goal.Progress.Equal(wantProgress) {
		return fmt.Errorf("expected progress %s, got %s", want, detail.Goal.Progress)
	}
	return nil
}

func aDayPasses(ctx context.Context) error {
	GetTestContext(ctx).clock.Advance(24 * time.Hour)
	return nil
}

func theReminderDelayElapses(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.scheduler.Pending() == 0 {
		return fmt.Errorf("no reminder is armed")
	}
	tc.clock.Advance(7 * 24 * time.Hour)
	tc.scheduler.FireAll()
	return nil
}

func theFirstArmedReminderFires(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.scheduler.Pending() == 0 {
		return fmt.Errorf("no reminder is armed")
	}
	tc.scheduler.Fire(0)
	return nil
}

func theLastArmedReminderFires(ctx context.Context) error {
	tc := GetTestContext(ctx)
	pending := tc.scheduler.Pending()
	if pending == 0 {
		return fmt.Errorf("no reminder is armed")
	}
	tc.scheduler.Fire(pending - 1)
	return nil
}

func aReminderWasDelivered(ctx context.Context, goalName string) error {
	tc := GetTestContext(ctx)
	for _, n := range tc.sink.Delivered() {
		if n.Title == "Reminder" && strings.Contains(n.Body, goalName) {
			return nil
		}
	}
	return fmt.Errorf("no reminder for %q was delivered, got %v", goalName, tc.sink.Delivered())
}

func noReminderWasDelivered(ctx context.Context) error {
	tc := GetTestContext(ctx)
	for _, n := range tc.sink.Delivered() {
		if n.Title == "Reminder" {
			return fmt.Errorf("unexpected reminder delivered: %v", n)
		}
	}
	return nil
}

func iDisableBudgetNotifications(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := doRequest(tc, http.MethodPatch, "/api/v1/settings", map[string]any{
		"budget_notifications_enabled": false,
	}); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

func iDisableGoalNotifications(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := doRequest(tc, http.MethodPatch, "/api/v1/settings", map[string]any{
		"goal_notifications_enabled": false,
	}); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

func iRequestRecommendations(ctx context.Context) error {
	tc := GetTestContext(ctx)
	return doRequest(tc, http.MethodGet, "/api/v1/recommendations", nil)
}

func theResponseIncludesRecommendations(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)

	var resp struct {
		Recommendations []string `json:"recommendations"`
	}
	if err := parseResponse(tc, &resp); err != nil {
		return err
	}
	if len(resp.Recommendations) != count {
		return fmt.Errorf("expected %d recommendations, got %d", count, len(resp.Recommendations))
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	return expectStatus(GetTestContext(ctx), expectedStatus)
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)

	var data map[string]any
	if err := parseResponse(tc, &data); err != nil {
		return err
	}
	if _, ok := data[field]; !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
	}
	return nil
}
