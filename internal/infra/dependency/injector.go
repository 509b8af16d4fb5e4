// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cluck-and-track/backend/config"
	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/application/usecase/auth"
	"github.com/cluck-and-track/backend/internal/application/usecase/eggrecord"
	"github.com/cluck-and-track/backend/internal/application/usecase/finance"
	"github.com/cluck-and-track/backend/internal/application/usecase/flock"
	"github.com/cluck-and-track/backend/internal/application/usecase/reminder"
	"github.com/cluck-and-track/backend/internal/application/usecase/report"
	"github.com/cluck-and-track/backend/internal/infra/cache"
	"github.com/cluck-and-track/backend/internal/infra/scheduler"
	"github.com/cluck-and-track/backend/internal/infra/server/router"
	"github.com/cluck-and-track/backend/internal/integration/adapters"
	"github.com/cluck-and-track/backend/internal/integration/email"
	"github.com/cluck-and-track/backend/internal/integration/email/templates"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/controller"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/middleware"
	"github.com/cluck-and-track/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	Scheduler   *scheduler.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil, in which case reports are recomputed on every
// request.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	recordRepo := persistence.NewEggRecordRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	revenueRepo := persistence.NewRevenueRepository(db)
	coopRepo := persistence.NewCoopRepository(db)
	cageRepo := persistence.NewCageRepository(db)
	feedRepo := persistence.NewFeedItemRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	suggestionService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	emailService := email.NewService(emailQueueRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("No Resend API key configured, emails will be logged instead of sent")
		sender = email.NewMockEmailSender()
	}

	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled {
		emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create egg record use cases
	createRecordUseCase := eggrecord.NewCreateRecordUseCase(recordRepo, cageRepo)
	listRecordsUseCase := eggrecord.NewListRecordsUseCase(recordRepo)
	updateRecordUseCase := eggrecord.NewUpdateRecordUseCase(recordRepo)
	updatePaymentStatusUseCase := eggrecord.NewUpdatePaymentStatusUseCase(recordRepo)
	deleteRecordUseCase := eggrecord.NewDeleteRecordUseCase(recordRepo)

	// Create finance use cases
	createExpenseUseCase := finance.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := finance.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := finance.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := finance.NewDeleteExpenseUseCase(expenseRepo)
	createRevenueUseCase := finance.NewCreateRevenueUseCase(revenueRepo)
	listRevenuesUseCase := finance.NewListRevenuesUseCase(revenueRepo)
	deleteRevenueUseCase := finance.NewDeleteRevenueUseCase(revenueRepo)
	suggestCategoryUseCase := finance.NewSuggestCategoryUseCase(suggestionService)

	// Create flock use cases
	createCoopUseCase := flock.NewCreateCoopUseCase(coopRepo)
	listCoopsUseCase := flock.NewListCoopsUseCase(coopRepo)
	createCageUseCase := flock.NewCreateCageUseCase(cageRepo, coopRepo)
	listCagesUseCase := flock.NewListCagesUseCase(cageRepo)
	createFeedItemUseCase := flock.NewCreateFeedItemUseCase(feedRepo)
	listFeedItemsUseCase := flock.NewListFeedItemsUseCase(feedRepo)
	addFeedStockUseCase := flock.NewAddFeedStockUseCase(feedRepo, expenseRepo)
	consumeFeedStockUseCase := flock.NewConsumeFeedStockUseCase(feedRepo)

	// Create report use cases
	var reportCache report.Cache
	if redisClient != nil {
		reportCache = cache.NewReportCache(redisClient)
	}

	eggProductionUseCase := report.NewGenerateEggProductionReportUseCase(
		recordRepo,
		expenseRepo,
		loadEggPricing(&cfg.Pricing),
	)
	financialReportUseCase := report.NewGenerateFinancialReportUseCase(expenseRepo, revenueRepo)
	creditSalesUseCase := report.NewGenerateCreditSalesSummaryUseCase(recordRepo)
	generateReportUseCase := report.NewGenerateReportUseCase(
		eggProductionUseCase,
		financialReportUseCase,
		creditSalesUseCase,
		reportCache,
		cfg.Reports.CacheTTL,
	)

	// Create reminder use case and scheduler
	sendRemindersUseCase := reminder.NewSendPaymentRemindersUseCase(recordRepo, emailService)

	var reminderScheduler *scheduler.Scheduler
	if cfg.Reminder.Enabled {
		reminderScheduler = scheduler.NewScheduler(cfg.Reminder.Schedule, userRepo, sendRemindersUseCase)
	}

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	eggRecordController := controller.NewEggRecordController(
		createRecordUseCase,
		listRecordsUseCase,
		updateRecordUseCase,
		updatePaymentStatusUseCase,
		deleteRecordUseCase,
	)

	financeController := controller.NewFinanceController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		createRevenueUseCase,
		listRevenuesUseCase,
		deleteRevenueUseCase,
		suggestCategoryUseCase,
	)

	flockController := controller.NewFlockController(
		createCoopUseCase,
		listCoopsUseCase,
		createCageUseCase,
		listCagesUseCase,
		createFeedItemUseCase,
		listFeedItemsUseCase,
		addFeedStockUseCase,
		consumeFeedStockUseCase,
	)

	reportController := controller.NewReportController(generateReportUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		eggRecordController,
		financeController,
		flockController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		Scheduler:   reminderScheduler,
	}, nil
}

// loadEggPricing converts the configured price strings to the pricing policy,
// falling back to defaults on malformed values.
func loadEggPricing(cfg *config.PricingConfig) report.EggPricing {
	pricing := report.DefaultEggPricing()

	if single, err := decimal.NewFromString(cfg.SingleEggPrice); err == nil && !single.IsNegative() {
		pricing.SinglePrice = single
	} else {
		slog.Warn("Invalid single egg price, using default", "value", cfg.SingleEggPrice)
	}

	if crate, err := decimal.NewFromString(cfg.CratePrice); err == nil && !crate.IsNegative() {
		pricing.CratePrice = crate
	} else {
		slog.Warn("Invalid crate price, using default", "value", cfg.CratePrice)
	}

	if cfg.CrateSize > 0 {
		pricing.CrateSize = cfg.CrateSize
	} else {
		slog.Warn("Invalid crate size, using default", "value", cfg.CrateSize)
	}

	return pricing
}
