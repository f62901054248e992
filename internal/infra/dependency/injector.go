// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/moneywise/backend/config"
	"github.com/moneywise/backend/internal/application/adapter"
	"github.com/moneywise/backend/internal/application/usecase/auth"
	"github.com/moneywise/backend/internal/application/usecase/category"
	"github.com/moneywise/backend/internal/application/usecase/goal"
	"github.com/moneywise/backend/internal/application/usecase/investment"
	"github.com/moneywise/backend/internal/application/usecase/report"
	"github.com/moneywise/backend/internal/application/usecase/summary"
	"github.com/moneywise/backend/internal/application/usecase/transaction"
	"github.com/moneywise/backend/internal/infra/server/router"
	"github.com/moneywise/backend/internal/integration/adapters"
	"github.com/moneywise/backend/internal/integration/email"
	"github.com/moneywise/backend/internal/integration/email/templates"
	"github.com/moneywise/backend/internal/integration/entrypoint/controller"
	"github.com/moneywise/backend/internal/integration/entrypoint/middleware"
	"github.com/moneywise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters and services
	denylist := adapters.NewRedisTokenDenylist(redisClient)
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo, denylist)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	// Email delivery
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Investment use cases
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo)
	simulateInvestmentUseCase := investment.NewSimulateInvestmentUseCase()

	// Report and summary use cases
	getChartsUseCase := report.NewGetChartsUseCase(transactionRepo, categoryRepo)
	getSummaryUseCase := summary.NewGetSummaryUseCase(transactionRepo, goalRepo, investmentRepo)

	// Controllers
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
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	investmentController := controller.NewInvestmentController(
		listInvestmentsUseCase,
		createInvestmentUseCase,
		updateInvestmentUseCase,
		deleteInvestmentUseCase,
		simulateInvestmentUseCase,
	)

	reportController := controller.NewReportController(getChartsUseCase)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		goalController,
		investmentController,
		reportController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
