package handlers

import (
	"net/http"

	"smart-table-api/middleware"
	"smart-table-api/models"
	"smart-table-api/ws"

	"github.com/gin-gonic/gin"
)

// DinerFeed subscribes a diner session to its table's order events.
// Polling the order endpoints stays the baseline; this feed is an
// optional live channel.
func (a *API) DinerFeed(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}
	ws.ServeWS(a.Hub, table, c.Writer, c.Request)
}

// StaffFeed subscribes a staff client to all order events. Browsers
// cannot set headers on websocket dials, so the JWT arrives as a query
// parameter.
func (a *API) StaffFeed(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if claims.Role != models.RoleStaff && claims.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
		return
	}
	ws.ServeWS(a.Hub, ws.RoomStaff, c.Writer, c.Request)
}
