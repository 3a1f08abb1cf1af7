package handlers

import (
	"net/http"

	"budgetbuddy/internal/database"
	"budgetbuddy/models"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type createBudgetRequest struct {
	CategoryID   int     `json:"category_id" binding:"required,min=1"`
	BudgetAmount float64 `json:"budget_amount" binding:"required,gt=0"`
	CycleMonth   string  `json:"cycle_month" binding:"required"`
}

type updateBudgetRequest struct {
	CategoryID   *int     `json:"category_id"`
	BudgetAmount *float64 `json:"budget_amount"`
	CycleMonth   *string  `json:"cycle_month"`
}

func CreateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		var req createBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "category_id, a positive budget_amount and cycle_month are required")
			return
		}
		month, err := models.ParseCycleMonth(req.CycleMonth)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		budget := &models.Budget{
			UserID:       userID,
			CategoryID:   req.CategoryID,
			BudgetAmount: req.BudgetAmount,
			CycleMonth:   month,
		}
		if err := database.CreateBudget(c.Request.Context(), pool, budget); err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusCreated, "budget created", budget)
	}
}

// ListBudgetsHandler returns the caller's budgets. With ?month=YYYY-MM the
// rows come back joined with their spending for that cycle month.
func ListBudgetsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		if s := c.Query("month"); s != "" {
			month, err := models.ParseCycleMonth(s)
			if err != nil {
				utils.Error(c, http.StatusBadRequest, err.Error())
				return
			}
			usages, err := database.BudgetsWithSpending(c.Request.Context(), pool, userID, month)
			if err != nil {
				fail(c, err, "")
				return
			}
			utils.Success(c, http.StatusOK, "budgets fetched", usages)
			return
		}

		budgets, err := database.ListBudgets(c.Request.Context(), pool, userID, nil)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "budgets fetched", budgets)
	}
}

func GetBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		budget, err := database.GetBudgetByID(c.Request.Context(), pool, id, userID)
		if err != nil {
			fail(c, err, "budget not found")
			return
		}
		utils.Success(c, http.StatusOK, "budget fetched", budget)
	}
}

func UpdateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		var req updateBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}

		budget, err := database.GetBudgetByID(c.Request.Context(), pool, id, userID)
		if err != nil {
			fail(c, err, "budget not found")
			return
		}

		if req.CategoryID != nil {
			if *req.CategoryID < 1 {
				utils.Error(c, http.StatusBadRequest, "invalid category_id")
				return
			}
			budget.CategoryID = *req.CategoryID
		}
		if req.BudgetAmount != nil {
			if *req.BudgetAmount <= 0 {
				utils.Error(c, http.StatusBadRequest, "budget_amount must be positive")
				return
			}
			budget.BudgetAmount = *req.BudgetAmount
		}
		if req.CycleMonth != nil {
			month, err := models.ParseCycleMonth(*req.CycleMonth)
			if err != nil {
				utils.Error(c, http.StatusBadRequest, err.Error())
				return
			}
			budget.CycleMonth = month
		}

		if err := database.UpdateBudget(c.Request.Context(), pool, budget); err != nil {
			fail(c, err, "budget not found")
			return
		}
		utils.Success(c, http.StatusOK, "budget updated", budget)
	}
}

func DeleteBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if _, err := database.GetBudgetByID(c.Request.Context(), pool, id, userID); err != nil {
			fail(c, err, "budget not found")
			return
		}
		if err := database.DeleteBudget(c.Request.Context(), pool, id, userID); err != nil {
			fail(c, err, "budget not found")
			return
		}
		utils.Success(c, http.StatusOK, "budget deleted", nil)
	}
}
