package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"

	"diamondstore/internal/config"
	"diamondstore/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error running database migrations: %v", err)
	}

	return connectionPool
}

// Migrate keeps the schema in sync at startup. Ledger rows and intents are
// append-heavy tables; AutoMigrate only ever adds columns and indexes here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.PaymentIntent{},
		&db_models.Transaction{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
