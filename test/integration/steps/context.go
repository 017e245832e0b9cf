// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/centsible/backend/internal/application/usecase/auth"
	"github.com/centsible/backend/internal/application/usecase/budget"
	"github.com/centsible/backend/internal/application/usecase/category"
	"github.com/centsible/backend/internal/application/usecase/goal"
	"github.com/centsible/backend/internal/application/usecase/recommendation"
	"github.com/centsible/backend/internal/application/usecase/settings"
	"github.com/centsible/backend/internal/application/usecase/transaction"
	"github.com/centsible/backend/internal/infra/server/router"
	"github.com/centsible/backend/internal/integration/adapters"
	"github.com/centsible/backend/internal/integration/entrypoint/controller"
	"github.com/centsible/backend/internal/integration/entrypoint/middleware"
	"github.com/centsible/backend/internal/integration/marker"
	"github.com/centsible/backend/internal/integration/persistence"
	"github.com/centsible/backend/internal/integration/persistence/model"
	"github.com/centsible/backend/internal/integration/preference"
	"github.com/centsible/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Auth
	token string

	// Entities created during the scenario, by display name.
	categories map[string]string
	goals      map[string]string
	lastTxnID  string

	// Test doubles
	db        *mock.Db
	sink      *mock.Sink
	scheduler *mock.Scheduler
	clock     *mock.Clock
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAuthSteps(ctx)
	registerCategorySteps(ctx)
	registerBudgetSteps(ctx)
	registerGoalSteps(ctx)
	registerSettingsSteps(ctx)
	registerRecommendationSteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full application against in-process fakes: a
// shared in-memory sqlite database, an embedded redis, a settable clock, a
// hand-fired scheduler and a recording notification sink.
func newTestContext() (*TestContext, error) {
	testDB := mock.NewDb([]any{
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.SavingsGoalModel{},
		&model.ContributionModel{},
	})
	if err := testDB.Reset(); err != nil {
		return nil, err
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, err
	}

	sink := mock.NewSink()
	scheduler := mock.NewScheduler()
	clock := mock.NewClock()

	gormDB := testDB.DbConn

	userRepo := persistence.NewUserRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	budgetRepo := persistence.NewBudgetRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)

	markerStore := marker.NewRedisStore(redisClient)
	preferenceStore := preference.NewRedisStore(redisClient)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("integration-test-secret", time.Hour)
	advisor := adapters.NewGeminiService("")

	tracker := budget.NewCrossingTracker()
	recomputeSpent := budget.NewRecomputeSpentUseCase(transactionRepo, budgetRepo, clock)
	notifier := budget.NewThresholdNotifier(preferenceStore, sink, tracker)
	refreshBudgets := budget.NewRefreshCategoryBudgetsUseCase(budgetRepo, categoryRepo, recomputeSpent, notifier)

	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, refreshBudgets)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, refreshBudgets)
	monthSummaryUseCase := transaction.NewGetMonthSummaryUseCase(transactionRepo)

	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, recomputeSpent)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, categoryRepo, recomputeSpent)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, recomputeSpent)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, tracker)

	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, markerStore)
	contributeUseCase := goal.NewContributeUseCase(
		goalRepo,
		markerStore,
		preferenceStore,
		sink,
		clock,
		scheduler,
		7*24*time.Hour,
	)

	getSettingsUseCase := settings.NewGetSettingsUseCase(preferenceStore)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(preferenceStore, getSettingsUseCase)

	getRecommendationsUseCase := recommendation.NewGetRecommendationsUseCase(transactionRepo, advisor, clock)

	r := router.NewRouter(
		controller.NewHealthController(),
		controller.NewAuthController(registerUseCase, loginUseCase),
		controller.NewCategoryController(createCategoryUseCase, listCategoriesUseCase, deleteCategoryUseCase),
		controller.NewTransactionController(createTransactionUseCase, listTransactionsUseCase, deleteTransactionUseCase, monthSummaryUseCase),
		controller.NewBudgetController(createBudgetUseCase, listBudgetsUseCase, updateBudgetUseCase, deleteBudgetUseCase),
		controller.NewGoalController(createGoalUseCase, listGoalsUseCase, getGoalUseCase, updateGoalUseCase, deleteGoalUseCase, contributeUseCase),
		controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase),
		controller.NewRecommendationController(getRecommendationsUseCase),
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)

	tc := &TestContext{
		categories: make(map[string]string),
		goals:      make(map[string]string),
		db:         testDB,
		sink:       sink,
		scheduler:  scheduler,
		clock:      clock,
	}
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)

	return tc, nil
}
