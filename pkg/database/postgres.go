package database

import (
	"log"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.CheckoutRecord{},
		&models.Sale{},
		&models.Expense{},
		&models.User{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	seedRooms(db)
	seedUsers(db)
	return db
}

// seedRooms creates the fleet on first boot; an existing fleet is left
// alone.
func seedRooms(db *gorm.DB) {
	var count int64
	db.Model(&models.Room{}).Count(&count)
	if count > 0 {
		return
	}

	rooms := []models.Room{
		{Number: 101, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		{Number: 102, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		{Number: 103, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		{Number: 104, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		{Number: 105, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		{Number: 201, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		{Number: 202, Type: models.RoomTypeDeluxe, Rate: 2000, Status: models.RoomAvailable},
		{Number: 203, Type: models.RoomTypePremium, Rate: 3000, Status: models.RoomAvailable},
		{Number: 204, Type: models.RoomTypePremium, Rate: 3000, Status: models.RoomAvailable},
		{Number: 301, Type: models.RoomTypePremium, Rate: 3000, Status: models.RoomAvailable},
		{Number: 302, Type: models.RoomTypePremium, Rate: 3000, Status: models.RoomAvailable},
		{Number: 303, Type: models.RoomTypePremium, Rate: 3000, Status: models.RoomAvailable},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("[Database] failed to seed rooms: %v", err)
	}
}

func seedUsers(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[Database] failed to hash seed password: %v", err)
		return
	}

	users := []models.User{
		{Username: "admin", Name: "Admin User", PasswordHash: string(hash), Role: "admin"},
		{Username: "staff", Name: "Staff User", PasswordHash: string(hash), Role: "staff"},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Printf("[Database] failed to seed users: %v", err)
	}
}
