package main

import (
	"fmt"
	"net/http"
	"os"

	"finwise/internal/config"
	"finwise/internal/database"
	"finwise/internal/handlers"
	"finwise/internal/logger"
	"finwise/internal/middleware"
	"finwise/internal/sealion"
	"finwise/internal/services"
	"finwise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finwise/internal/docs" // Import swagger docs
)

// @title           Finwise API
// @version         1.0
// @description     Finwise is a personal budgeting application with monthly budgets, expense tracking, savings goals, AI-generated savings plans, and an anonymous confession forum.

// @host      localhost:5001
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Outbound text-generation client
	sealionClient := sealion.New(
		appConfig.SeaLionAPIKey,
		appConfig.SeaLionModel,
		appConfig.SeaLionTimeout,
		sealion.WithBaseURL(appConfig.SeaLionAPIURL),
	)

	// Initialize services
	db := dbManager.DB()
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db)
	goalService := services.NewGoalService(db)
	confessionService := services.NewConfessionService(db)
	settingsService := services.NewSettingsService(db)
	planService := services.NewPlanService(sealionClient)
	chatService := services.NewChatService(sealionClient)

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	goalHandler := handlers.NewGoalHandler(goalService)
	confessionHandler := handlers.NewConfessionHandler(confessionService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	planHandler := handlers.NewPlanHandler(planService, settingsService)
	chatHandler := handlers.NewChatHandler(chatService, settingsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Legacy flat surface
	api := router.Group("/api")
	api.POST("/chat", chatHandler.Chat)
	api.POST("/generate-plan", planHandler.GeneratePlan)
	api.POST("/confess", confessionHandler.Confess)
	api.GET("/confess", confessionHandler.ListConfessions)
	api.GET("/forum", confessionHandler.Forum)

	// API v1 group
	v1 := router.Group("/api/v1")

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.POST("/import", budgetHandler.ImportBudget)
	budgets.GET("/:month", budgetHandler.GetBudget)
	budgets.PUT("/:month", budgetHandler.UpsertBudget)
	budgets.GET("/:month/remaining", budgetHandler.GetRemaining)
	budgets.GET("/:month/summaries", budgetHandler.GetSummaries)
	budgets.POST("/:month/categories", budgetHandler.AddCategory)
	budgets.PUT("/:month/categories/:id", budgetHandler.EditCategory)
	budgets.DELETE("/:month/categories/:id", budgetHandler.DeleteCategory)

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.AddExpense)
	expenses.GET("/:month", expenseHandler.GetMonthExpenses)
	expenses.PUT("/:id", expenseHandler.EditExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Goal routes
	goals := v1.Group("/goals")
	goals.POST("", goalHandler.AddGoal)
	goals.GET("", goalHandler.ListGoals)
	goals.PATCH("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/non-negotiables", goalHandler.AddNonNegotiable)
	goals.DELETE("/:id/non-negotiables", goalHandler.RemoveNonNegotiable)

	// Settings routes
	settings := v1.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)

	log.Infof("Starting Finwise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
