package config

import (
	"log"
	"os"
	"strings"

	"smart-table-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "smart_table_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath is the SQLite file backing the shared order store.
func DBPath() string {
	return getEnv("DB_PATH", "smart_table.db")
}

// MenuPath is the categorized menu file loaded once at boot.
func MenuPath() string {
	return getEnv("MENU_PATH", "menu.json")
}

// InvoiceDir is where completed-order receipts are written.
func InvoiceDir() string {
	return getEnv("INVOICE_DIR", "invoices")
}

// Tables returns the seating roster, a comma-separated list of table
// numbers.
func Tables() []string {
	raw := getEnv("TABLES", "1,2,3,4,5,6,7,8,9,10")
	parts := strings.Split(raw, ",")
	tables := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tables = append(tables, t)
		}
	}
	return tables
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(DBPath()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Feedback{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
