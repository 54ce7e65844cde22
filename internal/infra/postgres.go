package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"itinero/internal/models/db_models"
	"itinero/pkg/config"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.SetupJoinTable(&db_models.Place{}, "Labels", &db_models.PlaceLabel{}); err != nil {
		log.Fatalf("Error registering place-label join table: %v", err)
	}

	return connectionPool
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
