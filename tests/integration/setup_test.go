package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finwise/internal/handlers"
	"finwise/internal/logger"
	"finwise/internal/middleware"
	"finwise/internal/models"
	"finwise/internal/sealion"
	"finwise/internal/services"
	"finwise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Budget{},
		&models.Category{},
		&models.Expense{},
		&models.Goal{},
		&models.ConfessionPost{},
		&models.Setting{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// fakeUpstream starts a stand-in for the text-generation endpoint that
// always answers with the given content and status.
func fakeUpstream(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("failed to encode upstream response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite and the given text-generation endpoint.
func setupApp(t *testing.T, upstreamURL string) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	sealionClient := sealion.New("test-key", "test-model", 5*time.Second,
		sealion.WithBaseURL(upstreamURL))

	// Services
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db)
	goalService := services.NewGoalService(db)
	confessionService := services.NewConfessionService(db)
	settingsService := services.NewSettingsService(db)
	planService := services.NewPlanService(sealionClient)
	chatService := services.NewChatService(sealionClient)

	// Handlers
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	goalHandler := handlers.NewGoalHandler(goalService)
	confessionHandler := handlers.NewConfessionHandler(confessionService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	planHandler := handlers.NewPlanHandler(planService, settingsService)
	chatHandler := handlers.NewChatHandler(chatService, settingsService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")
	api.POST("/chat", chatHandler.Chat)
	api.POST("/generate-plan", planHandler.GeneratePlan)
	api.POST("/confess", confessionHandler.Confess)
	api.GET("/confess", confessionHandler.ListConfessions)
	api.GET("/forum", confessionHandler.Forum)

	v1 := router.Group("/api/v1")

	budgets := v1.Group("/budgets")
	budgets.POST("/import", budgetHandler.ImportBudget)
	budgets.GET("/:month", budgetHandler.GetBudget)
	budgets.PUT("/:month", budgetHandler.UpsertBudget)
	budgets.GET("/:month/remaining", budgetHandler.GetRemaining)
	budgets.GET("/:month/summaries", budgetHandler.GetSummaries)
	budgets.POST("/:month/categories", budgetHandler.AddCategory)
	budgets.PUT("/:month/categories/:id", budgetHandler.EditCategory)
	budgets.DELETE("/:month/categories/:id", budgetHandler.DeleteCategory)

	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.AddExpense)
	expenses.GET("/:month", expenseHandler.GetMonthExpenses)
	expenses.PUT("/:id", expenseHandler.EditExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	goals := v1.Group("/goals")
	goals.POST("", goalHandler.AddGoal)
	goals.GET("", goalHandler.ListGoals)
	goals.PATCH("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/non-negotiables", goalHandler.AddNonNegotiable)
	goals.DELETE("/:id/non-negotiables", goalHandler.RemoveNonNegotiable)

	settings := v1.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
