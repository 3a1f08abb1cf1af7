package handlers

import (
	"net/http"

	"budgetbuddy/internal/middleware"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
)

// CSRFTokenHandler issues a fresh token and sets the double-submit cookie.
// Clients echo the token back in the X-CSRF-Token header on unsafe methods.
func CSRFTokenHandler(store *middleware.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := store.Issue()
		c.SetCookie(middleware.CSRFCookieName, token, int(store.TTL().Seconds()), "/", "", false, true)
		utils.Success(c, http.StatusOK, "csrf token issued", gin.H{"csrf_token": token})
	}
}
