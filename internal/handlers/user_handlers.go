package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/models"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func RegisterHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "username and a password of at least 6 characters are required")
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			utils.Error(c, http.StatusBadRequest, "username must not be blank")
			return
		}

		taken, err := database.UsernameTaken(c.Request.Context(), pool, req.Username)
		if err != nil {
			fail(c, err, "")
			return
		}
		if taken {
			utils.Error(c, http.StatusBadRequest, "username already exists")
			return
		}

		user := &models.User{
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  req.Password,
		}
		if err := database.RegisterUser(c.Request.Context(), pool, user); err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusCreated, "user created", user)
	}
}

// LoginHandler verifies credentials and issues a bearer token.
func LoginHandler(pool *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "username and password are required")
			return
		}

		user, err := database.AuthenticateUser(c.Request.Context(), pool, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, database.ErrInvalidCredentials) {
				utils.Error(c, http.StatusBadRequest, "incorrect password")
				return
			}
			fail(c, err, "user not found")
			return
		}

		token, err := utils.GenerateToken(jwtSecret, user.ID, tokenTTL)
		if err != nil {
			fail(c, err, "")
			return
		}

		utils.Success(c, http.StatusOK, "login successful", gin.H{
			"token": token,
			"user":  user,
		})
	}
}

// LogoutHandler is stateless; the client discards the token.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.Success(c, http.StatusOK, "logged out", nil)
	}
}

func ProfileHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}
		user, err := database.GetUserByID(c.Request.Context(), pool, userID)
		if err != nil {
			fail(c, err, "user not found")
			return
		}
		utils.Success(c, http.StatusOK, "profile fetched", user)
	}
}

func ListUsersHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := database.GetAllUsers(c.Request.Context(), pool)
		if err != nil {
			fail(c, err, "")
			return
		}
		utils.Success(c, http.StatusOK, "users fetched", users)
	}
}

func GetUserHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		user, err := database.GetUserByID(c.Request.Context(), pool, id)
		if err != nil {
			fail(c, err, "user not found")
			return
		}
		utils.Success(c, http.StatusOK, "user fetched", user)
	}
}

// DeleteUserHandler removes a user; the data store cascades the delete to
// owned transactions and budgets.
func DeleteUserHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := database.DeleteUser(c.Request.Context(), pool, id); err != nil {
			fail(c, err, "user not found")
			return
		}
		utils.Success(c, http.StatusOK, "user deleted", nil)
	}
}
