package handlers

import (
	"net/http"

	"budgetbuddy/internal/database"
	"budgetbuddy/models"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRequest struct {
	Name string `json:"category_name" binding:"required"`
}

func ListCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := database.GetAllCategories(c.Request.Context(), pool)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "categories fetched", categories)
	}
}

func GetCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		category, err := database.GetCategoryByID(c.Request.Context(), pool, id)
		if err != nil {
			fail(c, err, "category not found")
			return
		}
		utils.Success(c, http.StatusOK, "category fetched", category)
	}
}

func CreateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "category_name is required")
			return
		}
		category := &models.Category{Name: req.Name}
		if err := database.CreateCategory(c.Request.Context(), pool, category); err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusCreated, "category created", category)
	}
}

func UpdateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "category_name is required")
			return
		}
		category := &models.Category{ID: id, Name: req.Name}
		if err := database.UpdateCategory(c.Request.Context(), pool, category); err != nil {
			fail(c, err, "category not found")
			return
		}
		utils.Success(c, http.StatusOK, "category updated", category)
	}
}

// DeleteCategoryHandler removes a category unless transactions or budgets
// still reference it.
func DeleteCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := database.DeleteCategory(c.Request.Context(), pool, id); err != nil {
			fail(c, err, "category not found")
			return
		}
		utils.Success(c, http.StatusOK, "category deleted", nil)
	}
}
