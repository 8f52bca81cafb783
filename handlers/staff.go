package handlers

import (
	"net/http"

	"smart-table-api/middleware"
	"smart-table-api/models"
	"smart-table-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetOrders returns all orders for the kitchen view, newest first, with
// a per-status summary
func (a *API) GetOrders(c *gin.Context) {
	var status models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseStatus(raw)
		if err != nil {
			abortWithError(c, err)
			return
		}
		status = parsed
	}

	orders, err := a.Orders.Orders(status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetOrderDetail returns a single order with items and status history
func (a *API) GetOrderDetail(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := a.Orders.GetOrder(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// UpdateOrderStatus moves an order through the fulfillment lifecycle.
// Completing an order generates its invoice.
func (a *API) UpdateOrderStatus(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	actor := string(middleware.GetRole(c))
	order, err := a.Orders.UpdateStatus(id, status, actor, req.Note)
	if err != nil {
		current, lookupErr := a.Orders.GetOrder(id)
		if lookupErr == nil {
			c.JSON(statusFor(err), gin.H{
				"error":             err.Error(),
				"current_status":    current.Status,
				"requested":         status,
				"valid_next_states": statemachine.ValidTransitionsFrom(current.Status),
			})
			return
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order":          order,
		"current_status": order.Status,
	})
}
