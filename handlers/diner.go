package handlers

import (
	"net/http"
	"strconv"

	"smart-table-api/models"

	"github.com/gin-gonic/gin"
)

// tableParam validates the :table path segment against the roster.
func (a *API) tableParam(c *gin.Context) (string, bool) {
	table := c.Param("table")
	if !a.Orders.KnownTable(table) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown table: " + table})
		return "", false
	}
	return table, true
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// GetCart returns the table's current cart and running total
func (a *API) GetCart(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"table": table,
		"cart":  a.Carts.Snapshot(table),
		"total": a.Carts.Total(table),
	})
}

type AddCartItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddCartItem adds one unit of a menu item to the table's cart at the
// item's current price
func (a *API) AddCartItem(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, found := a.Menu.Find(req.Name)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found: " + req.Name})
		return
	}

	a.Carts.Add(table, item)
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    a.Carts.Snapshot(table),
		"total":   a.Carts.Total(table),
	})
}

// RemoveCartItem decrements one unit of the named item. Removing an
// item that is not in the cart is a no-op.
func (a *API) RemoveCartItem(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}

	a.Carts.Remove(table, c.Param("name"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"cart":    a.Carts.Snapshot(table),
		"total":   a.Carts.Total(table),
	})
}

type PlaceOrderRequest struct {
	Payment string `json:"payment"`
}

// PlaceOrder submits the table's cart as a Pending order. The cart is
// cleared only after the store accepts the order.
func (a *API) PlaceOrder(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	payment, err := models.ParsePayment(req.Payment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method. Must be: Cash, Card or Online"})
		return
	}

	order, err := a.Orders.PlaceOrder(table, a.Carts.Snapshot(table), payment)
	if err != nil {
		abortWithError(c, err)
		return
	}
	a.Carts.Clear(table)

	c.JSON(http.StatusCreated, gin.H{
		"message": "✅ Order placed!",
		"order":   order,
	})
}

// GetMyOrders returns the table's orders, newest first, including
// completed and cancelled history
func (a *API) GetMyOrders(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}

	orders, err := a.Orders.OrdersForTable(table)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"table":  table,
		"count":  len(orders),
		"orders": orders,
	})
}

// CancelOrder cancels one of the table's own orders. Completed orders
// cannot be cancelled.
func (a *API) CancelOrder(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := a.Orders.GetOrder(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if order.Table != table {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your table"})
		return
	}

	cancelled, err := a.Orders.CancelOrder(id, "diner")
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled",
		"order":   cancelled,
	})
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating" binding:"required"`
	Message string `json:"message"`
}

// LeaveFeedback records a rating for the visit. Offered by the
// presentation layer once an order completes.
func (a *API) LeaveFeedback(c *gin.Context) {
	table, ok := a.tableParam(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := a.Orders.RecordFeedback(table, req.Name, req.Rating, req.Message)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Thanks for your feedback! 🙏",
		"feedback": fb,
	})
}
