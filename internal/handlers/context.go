package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rezwan-dev/feedstack/backend/internal/models"
)

// getUserIDFromContext returns the authenticated user id placed in the
// context by the JWT middleware, or 0 when the request carries no claims.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// getLimitOffset parses limit/offset query params with sane bounds
func getLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit < 1 || limit > 50 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
