package routes

import (
	"net/http"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/handlers"
	"budgetbuddy/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupRouter wires every endpoint. Auth-protected groups run the JWT
// middleware; the /protected tree additionally runs the CSRF check when
// enabled.
func SetupRouter(cfg *config.Config, pool *pgxpool.Pool, csrfStore *middleware.TokenStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", handlers.RegisterHandler(pool))
	auth.POST("/login", handlers.LoginHandler(pool, cfg.JWTSecret, cfg.TokenTTL))
	auth.POST("/logout", handlers.LogoutHandler())
	auth.GET("/profile", middleware.Auth(cfg.JWTSecret), handlers.ProfileHandler(pool))

	api.GET("/csrf-token", handlers.CSRFTokenHandler(csrfStore))

	// read-only category lookup, no auth
	api.GET("/categories", handlers.ListCategoriesHandler(pool))
	api.GET("/categories/:id", handlers.GetCategoryHandler(pool))

	api.GET("/users", handlers.ListUsersHandler(pool))
	api.GET("/users/:id", handlers.GetUserHandler(pool))
	api.DELETE("/users/:id", middleware.Auth(cfg.JWTSecret), handlers.DeleteUserHandler(pool))

	reportsGroup := api.Group("/reports", middleware.Auth(cfg.JWTSecret))
	reportsGroup.GET("/summary", handlers.SummaryReportHandler(pool))
	reportsGroup.GET("/income-vs-expense", handlers.IncomeVsExpenseHandler(pool))
	reportsGroup.GET("/expenses-by-category", handlers.ExpensesByCategoryHandler(pool))
	reportsGroup.GET("/monthly-close", handlers.MonthlyCloseHandler(pool))
	reportsGroup.GET("/annual", handlers.AnnualReportHandler(pool))
	reportsGroup.GET("/dashboard", handlers.DashboardCardsHandler(pool))

	protected := r.Group("/protected/api/v1", middleware.Auth(cfg.JWTSecret))
	if cfg.CSRFEnabled {
		protected.Use(middleware.CSRF(csrfStore))
	}

	protected.POST("/categories", handlers.CreateCategoryHandler(pool))
	protected.PUT("/categories/:id", handlers.UpdateCategoryHandler(pool))
	protected.DELETE("/categories/:id", handlers.DeleteCategoryHandler(pool))

	protected.POST("/transactions", handlers.CreateTransactionHandler(pool))
	protected.GET("/transactions", handlers.ListTransactionsHandler(pool))
	protected.GET("/transactions/:id", handlers.GetTransactionHandler(pool))
	protected.PATCH("/transactions/:id", handlers.UpdateTransactionHandler(pool))
	protected.PUT("/transactions/:id", handlers.UpdateTransactionHandler(pool))
	protected.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))

	protected.POST("/budgets", handlers.CreateBudgetHandler(pool))
	protected.GET("/budgets", handlers.ListBudgetsHandler(pool))
	protected.GET("/budgets/:id", handlers.GetBudgetHandler(pool))
	protected.PATCH("/budgets/:id", handlers.UpdateBudgetHandler(pool))
	protected.PUT("/budgets/:id", handlers.UpdateBudgetHandler(pool))
	protected.DELETE("/budgets/:id", handlers.DeleteBudgetHandler(pool))

	protected.GET("/home", handlers.HomeHandler(pool))
	protected.GET("/home/recent-transactions", handlers.RecentTransactionsHandler(pool))
	protected.GET("/home/analytics/monthly", handlers.AnalyticsMonthlyHandler(pool))
	protected.GET("/home/analytics/categories", handlers.AnalyticsCategoriesHandler(pool))

	return r
}
