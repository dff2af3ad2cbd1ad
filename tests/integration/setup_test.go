//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "frontdesk_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	dropTables()

	if err := testDB.AutoMigrate(
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.CheckoutRecord{},
		&models.Sale{},
		&models.Expense{},
		&models.User{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	dropTables()

	os.Exit(code)
}

func dropTables() {
	for _, table := range []string{"guests", "rooms", "reservations", "checkout_records", "sales", "expenses", "users"} {
		testDB.Exec("DROP TABLE IF EXISTS " + table)
	}
}

func cleanTables() {
	testDB.Exec("DELETE FROM guests")
	testDB.Exec("DELETE FROM rooms")
	testDB.Exec("DELETE FROM reservations")
	testDB.Exec("DELETE FROM checkout_records")
	testDB.Exec("DELETE FROM sales")
	testDB.Exec("DELETE FROM expenses")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
