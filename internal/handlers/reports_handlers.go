package handlers

import (
	"errors"
	"net/http"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/reports"
	"budgetbuddy/models"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errInvalidYear = errors.New("invalid year")

// SummaryReportHandler returns income/expense/balance over an optional
// inclusive date range.
func SummaryReportHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		from, to, err := parseDateRange(c)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		rows, err := database.TransactionsForSummary(c.Request.Context(), pool, userID, from, to)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "summary fetched", reports.Summarize(rows))
	}
}

// IncomeVsExpenseHandler compares a month (default: current) against the
// month before it.
func IncomeVsExpenseHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		month, err := monthParam(c)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		previous := models.NewCycleMonth(month.AddDate(0, -1, 0))

		current, err := monthSummary(c, pool, userID, month)
		if err != nil {
			fail(c, err, "")
			return
		}
		prior, err := monthSummary(c, pool, userID, previous)
		if err != nil {
			fail(c, err, "")
			return
		}

		utils.Success(c, http.StatusOK, "comparison fetched", gin.H{
			"current_month":  gin.H{"month": month.String(), "summary": current},
			"previous_month": gin.H{"month": previous.String(), "summary": prior},
			"comparison":     reports.MonthOverMonth(current, prior),
		})
	}
}

// ExpensesByCategoryHandler returns the category breakdown with each
// category's whole-percent share of total expenses.
func ExpensesByCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		from, to, err := parseDateRange(c)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		rows, err := database.TransactionsForSummary(c.Request.Context(), pool, userID, from, to)
		if err != nil {
			fail(c, err, "")
			return
		}
		breakdown := reports.CategoryBreakdown(rows)
		utils.Success(c, http.StatusOK, "category breakdown fetched", reports.ExpenseShares(breakdown))
	}
}

// MonthlyCloseHandler is the end-of-month report: summary, category
// breakdown and budget utilization for one cycle month.
func MonthlyCloseHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		month, err := monthParam(c)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		ctx := c.Request.Context()
		start, end := month.Range()

		rows, err := database.TransactionsForSummary(ctx, pool, userID, start, end)
		if err != nil {
			fail(c, err, "")
			return
		}
		budgets, err := database.BudgetsWithSpending(ctx, pool, userID, month)
		if err != nil {
			fail(c, err, "")
			return
		}

		utils.Success(c, http.StatusOK, "monthly close fetched", gin.H{
			"month":      month.String(),
			"summary":    reports.Summarize(rows),
			"categories": reports.CategoryBreakdown(rows),
			"budgets":    budgets,
		})
	}
}

// AnnualReportHandler returns the 12-month breakdown plus year totals.
func AnnualReportHandler(pool *pgxpool.Pool) gin.HandlerFunc {
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
		rows, err := database.YearTransactions(c.Request.Context(), pool, userID, year)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "annual report fetched", reports.AnnualBreakdown(rows, year))
	}
}

// DashboardCardsHandler returns the headline numbers the frontend renders as
// cards.
func DashboardCardsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		month := models.NewCycleMonth(time.Now())

		summary, err := monthSummary(c, pool, userID, month)
		if err != nil {
			fail(c, err, "")
			return
		}
		balance, err := database.TotalBalance(ctx, pool, userID)
		if err != nil {
			fail(c, err, "")
			return
		}
		budgets, err := database.ListBudgets(ctx, pool, userID, &month)
		if err != nil {
			fail(c, err, "")
			return
		}

		utils.Success(c, http.StatusOK, "dashboard cards fetched", gin.H{
			"total_balance":   balance,
			"monthly_income":  summary.TotalIncome,
			"monthly_expense": summary.TotalExpense,
			"monthly_balance": summary.Balance,
			"budgets_count":   len(budgets),
		})
	}
}

func monthParam(c *gin.Context) (models.CycleMonth, error) {
	s := c.Query("month")
	if s == "" {
		return models.NewCycleMonth(time.Now()), nil
	}
	return models.ParseCycleMonth(s)
}

func monthSummary(c *gin.Context, pool *pgxpool.Pool, userID int, month models.CycleMonth) (models.Summary, error) {
	start, end := month.Range()
	rows, err := database.TransactionsForSummary(c.Request.Context(), pool, userID, start, end)
	if err != nil {
		return models.Summary{}, err
	}
	return reports.Summarize(rows), nil
}
