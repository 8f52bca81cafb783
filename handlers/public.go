package handlers

import (
	"net/http"

	"smart-table-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the full categorized menu (public)
func (a *API) GetMenu(c *gin.Context) {
	categories := a.Menu.Categories()
	menu := make([]gin.H, 0, len(categories))
	count := 0
	for _, category := range categories {
		items, _ := a.Menu.Items(category)
		count += len(items)
		menu = append(menu, gin.H{
			"category": category,
			"items":    items,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"count": count,
		"menu":  menu,
	})
}

// GetMenuCategory returns the items of one category (public)
func (a *API) GetMenuCategory(c *gin.Context) {
	category := c.Param("category")
	items, ok := a.Menu.Items(category)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(items),
		"items":    items,
	})
}

// GetTables returns the seating roster and which tables are free for a
// new session. Recomputed per request — diners poll this while picking
// a table.
func (a *API) GetTables(c *gin.Context) {
	available, err := a.Orders.AvailableTables()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tables":    a.Orders.Tables(),
		"available": available,
	})
}

// GetStateMachineInfo returns the full state machine for informational purposes
func (a *API) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": []string{"Completed", "Cancelled"},
		"description":     "Smart Table Order Lifecycle State Machine",
	})
}
