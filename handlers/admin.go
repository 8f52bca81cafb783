package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminDeleteOrder removes an order permanently — admin only, no restore
func (a *API) AdminDeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := a.Orders.DeleteOrder(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order deleted",
		"order_id": id,
	})
}

// AdminListFeedback returns all diner feedback — admin only
func (a *API) AdminListFeedback(c *gin.Context) {
	feedback, err := a.Orders.ListFeedback()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(feedback), "feedback": feedback})
}

// AdminListPayments returns all recorded payments — admin only
func (a *API) AdminListPayments(c *gin.Context) {
	payments, err := a.Orders.ListPayments()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "payments": payments})
}
