package handlers

import (
	"net/http"
	"strconv"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/reports"
	"budgetbuddy/models"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HomeHandler assembles the dashboard: current-month summary, budget usage
// and the newest transactions.
func HomeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		month := models.NewCycleMonth(time.Now())
		start, end := month.Range()

		rows, err := database.TransactionsForSummary(ctx, pool, userID, start, end)
		if err != nil {
			fail(c, err, "")
			return
		}
		summary := reports.Summarize(rows)

		budgets, err := database.BudgetsWithSpending(ctx, pool, userID, month)
		if err != nil {
			fail(c, err, "")
			return
		}

		recent, err := database.RecentTransactions(ctx, pool, userID, 5)
		if err != nil {
			fail(c, err, "")
			return
		}

		balance, err := database.TotalBalance(ctx, pool, userID)
		if err != nil {
			fail(c, err, "")
			return
		}

		utils.Success(c, http.StatusOK, "dashboard fetched", gin.H{
			"month":               month.String(),
			"summary":             summary,
			"budgets":             budgets,
			"recent_transactions": recent,
			"total_balance":       balance,
		})
	}
}

func RecentTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
		transactions, err := database.RecentTransactions(c.Request.Context(), pool, userID, limit)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "recent transactions fetched", transactions)
	}
}

// AnalyticsMonthlyHandler returns per-month expense totals for a year.
func AnalyticsMonthlyHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		year, err := yearParam(c)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		totals, err := database.MonthlyExpenseTotals(c.Request.Context(), pool, userID, year)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "monthly expenses fetched", totals)
	}
}

// AnalyticsCategoriesHandler returns expense totals grouped by category.
func AnalyticsCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		totals, err := database.CategoryExpenseTotals(c.Request.Context(), pool, userID)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "category expenses fetched", totals)
	}
}

func yearParam(c *gin.Context) (int, error) {
	s := c.Query("year")
	if s == "" {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1970 || year > 9999 {
		return 0, errInvalidYear
	}
	return year, nil
}
