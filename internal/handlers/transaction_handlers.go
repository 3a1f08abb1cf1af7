package handlers

import (
	"net/http"
	"strconv"

	"budgetbuddy/internal/database"
	"budgetbuddy/models"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type createTransactionRequest struct {
	CategoryID int     `json:"category_id" binding:"required,min=1"`
	Type       string  `json:"type" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Note       string  `json:"note"`
}

type updateTransactionRequest struct {
	CategoryID *int     `json:"category_id"`
	Type       *string  `json:"type"`
	Amount     *float64 `json:"amount"`
	Note       *string  `json:"note"`
}

func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		var req createTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "category_id, type and a positive amount are required")
			return
		}
		if !models.ValidType(req.Type) {
			utils.Error(c, http.StatusBadRequest, "type must be income or expense")
			return
		}

		transaction := &models.Transaction{
			UserID:     userID,
			CategoryID: req.CategoryID,
			Type:       req.Type,
			Amount:     req.Amount,
			Note:       req.Note,
		}
		if err := database.CreateTransaction(c.Request.Context(), pool, transaction); err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusCreated, "transaction created", transaction)
	}
}

// ListTransactionsHandler supports type, category_id and date-range filters
// plus pagination (default 20 per page, max 100).
func ListTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		filter := database.TransactionFilter{}
		if t := c.Query("type"); t != "" {
			if !models.ValidType(t) {
				utils.Error(c, http.StatusBadRequest, "type must be income or expense")
				return
			}
			filter.Type = t
		}
		if s := c.Query("category_id"); s != "" {
			id, err := strconv.Atoi(s)
			if err != nil || id < 1 {
				utils.Error(c, http.StatusBadRequest, "invalid category_id")
				return
			}
			filter.CategoryID = id
		}
		from, to, err := parseDateRange(c)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		filter.From, filter.To = from, to
		filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(database.DefaultPageSize)))

		transactions, total, err := database.ListTransactions(c.Request.Context(), pool, userID, filter)
		if err != nil {
			fail(c, err, "")
			return
		}

		if filter.Page < 1 {
			filter.Page = 1
		}
		limit := filter.Limit
		if limit < 1 {
			limit = database.DefaultPageSize
		}
		if limit > database.MaxPageSize {
			limit = database.MaxPageSize
		}
		totalPages := (total + limit - 1) / limit
		utils.SuccessPaginated(c, http.StatusOK, "transactions fetched", transactions, models.Pagination{
			Total:      total,
			Page:       filter.Page,
			Limit:      limit,
			TotalPages: totalPages,
		})
	}
}

func GetTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
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
		transaction, err := database.GetTransactionByID(c.Request.Context(), pool, id, userID)
		if err != nil {
			fail(c, err, "transaction not found")
			return
		}
		utils.Success(c, http.StatusOK, "transaction fetched", transaction)
	}
}

func UpdateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
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
		var req updateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}

		transaction, err := database.GetTransactionByID(c.Request.Context(), pool, id, userID)
		if err != nil {
			fail(c, err, "transaction not found")
			return
		}

		if req.CategoryID != nil {
			if *req.CategoryID < 1 {
				utils.Error(c, http.StatusBadRequest, "invalid category_id")
				return
			}
			transaction.CategoryID = *req.CategoryID
		}
		if req.Type != nil {
			if !models.ValidType(*req.Type) {
				utils.Error(c, http.StatusBadRequest, "type must be income or expense")
				return
			}
			transaction.Type = *req.Type
		}
		if req.Amount != nil {
			if *req.Amount <= 0 {
				utils.Error(c, http.StatusBadRequest, "amount must be positive")
				return
			}
			transaction.Amount = *req.Amount
		}
		if req.Note != nil {
			transaction.Note = *req.Note
		}

		if err := database.UpdateTransaction(c.Request.Context(), pool, transaction); err != nil {
			fail(c, err, "transaction not found")
			return
		}
		utils.Success(c, http.StatusOK, "transaction updated", transaction)
	}
}

// DeleteTransactionHandler verifies ownership before deleting so a foreign
// id reports not-found rather than silently affecting nothing.
func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
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
		if _, err := database.GetTransactionByID(c.Request.Context(), pool, id, userID); err != nil {
			fail(c, err, "transaction not found")
			return
		}
		if err := database.DeleteTransaction(c.Request.Context(), pool, id, userID); err != nil {
			fail(c, err, "transaction not found")
			return
		}
		utils.Success(c, http.StatusOK, "transaction deleted", nil)
	}
}
