package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/middleware"
	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// mustUserID pulls the verified owner id out of the request context. A
// missing id means the route was wired without the auth middleware.
func mustUserID(c *gin.Context) (int, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Error(c, http.StatusUnauthorized, "authentication required")
		c.Abort()
		return 0, false
	}
	return userID, true
}

// fail maps the data layer's error kinds onto HTTP status codes. The mapping
// is a total function over the closed error set; anything unknown is an
// internal error that gets logged and answered generically.
func fail(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		utils.Error(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, database.ErrDuplicate):
		utils.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, database.ErrInUse):
		utils.Error(c, http.StatusConflict, "record is referenced by existing transactions or budgets")
	default:
		logrus.WithError(err).Error("request failed")
		utils.ErrorDetail(c, http.StatusInternalServerError, "internal server error", "unexpected error")
	}
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// parseDateRange reads optional from/to query params (YYYY-MM-DD). The
// returned bounds are half-open: from inclusive, to exclusive (the caller's
// "to" day itself is still covered).
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time
	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return from, to, fmt.Errorf("invalid from date %q", s)
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return from, to, fmt.Errorf("invalid to date %q", s)
		}
		to = parsed.AddDate(0, 0, 1)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("date range end precedes start")
	}
	return from, to, nil
}
