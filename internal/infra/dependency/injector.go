// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/centsible/backend/config"
	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/application/usecase/auth"
	"github.com/centsible/backend/internal/application/usecase/budget"
	"github.com/centsible/backend/internal/application/usecase/category"
	"github.com/centsible/backend/internal/application/usecase/goal"
	"github.com/centsible/backend/internal/application/usecase/recommendation"
	"github.com/centsible/backend/internal/application/usecase/settings"
	"github.com/centsible/backend/internal/application/usecase/transaction"
	"github.com/centsible/backend/internal/infra/db"
	"github.com/centsible/backend/internal/infra/server/router"
	"github.com/centsible/backend/internal/integration/adapters"
	"github.com/centsible/backend/internal/integration/entrypoint/controller"
	"github.com/centsible/backend/internal/integration/entrypoint/middleware"
	"github.com/centsible/backend/internal/integration/marker"
	"github.com/centsible/backend/internal/integration/notification"
	"github.com/centsible/backend/internal/integration/persistence"
	"github.com/centsible/backend/internal/integration/preference"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *db.Database
	Router *router.Router
}

// NewInjector creates and wires all application dependencies.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client) *Injector {
	gormDB := database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	budgetRepo := persistence.NewBudgetRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)

	// Redis-backed stores
	markerStore := marker.NewRedisStore(redisClient)
	preferenceStore := preference.NewRedisStore(redisClient)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	clock := adapters.NewSystemClock()
	scheduler := adapters.NewTimerScheduler()
	advisor := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	sink := newNotificationSink(cfg)

	// Budget services
	tracker := budget.NewCrossingTracker()
	recomputeSpent := budget.NewRecomputeSpentUseCase(transactionRepo, budgetRepo, clock)
	notifier := budget.NewThresholdNotifier(preferenceStore, sink, tracker)
	refreshBudgets := budget.NewRefreshCategoryBudgetsUseCase(budgetRepo, categoryRepo, recomputeSpent, notifier)

	// Use cases
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
		cfg.Reminder.Delay,
	)

	getSettingsUseCase := settings.NewGetSettingsUseCase(preferenceStore)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(preferenceStore, getSettingsUseCase)

	getRecommendationsUseCase := recommendation.NewGetRecommendationsUseCase(transactionRepo, advisor, clock)

	// Controllers
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(createCategoryUseCase, listCategoriesUseCase, deleteCategoryUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
		monthSummaryUseCase,
	)
	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)
	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		contributeUseCase,
	)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	recommendationController := controller.NewRecommendationController(getRecommendationsUseCase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	loginRateLimiter := middleware.NewRateLimiter()

	appRouter := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		budgetController,
		goalController,
		settingsController,
		recommendationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     database,
		Router: appRouter,
	}
}

// newNotificationSink selects the delivery sink. Email delivery is used when
// a Resend API key is configured; otherwise notifications go to the log.
func newNotificationSink(cfg *config.Config) adapter.NotificationSink {
	logger := slog.Default()
	if cfg.Email.ResendAPIKey != "" {
		return notification.NewEmailSink(
			cfg.Email.ResendAPIKey,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
			cfg.Email.ToEmail,
			logger,
		)
	}
	return notification.NewLogSink(logger)
}
