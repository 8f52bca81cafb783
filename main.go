package main

import (
	"log"
	"net/http"
	"os"

	"smart-table-api/cart"
	"smart-table-api/config"
	"smart-table-api/handlers"
	"smart-table-api/invoice"
	"smart-table-api/menu"
	"smart-table-api/routes"
	"smart-table-api/store"
	"smart-table-api/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Load the menu once per process; the catalog is immutable after this
	catalog, err := menu.Load(config.MenuPath())
	if err != nil {
		log.Fatal("Failed to load menu:", err)
	}

	// Event hub for live order updates (polling stays the baseline)
	hub := ws.NewHub()
	go hub.Run()

	orders := store.New(
		config.DB,
		config.Tables(),
		invoice.NewFileGenerator(config.InvoiceDir()),
		ws.NewOrderNotifier(hub),
	)
	api := handlers.New(config.DB, catalog, cart.NewSessions(), orders, hub)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Smart Table Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍽️ Welcome to the Smart Table Ordering API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"tables":  config.Tables(),
		})
	})

	// Register all routes
	routes.SetupRoutes(r, api)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
