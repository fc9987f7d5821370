package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"sharenotes-be/internal/model"
	"sharenotes-be/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration...")

	color.Yellow("Step 1: Setting up extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	color.Yellow("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.User{},
		&model.Friendship{},
		&model.Request{},
		&model.Note{},
		&model.Share{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// AutoMigrate cannot express a partial index. One pending request per
	// direction pair closes the duplicate-send race at the database level.
	color.Yellow("Step 3: Creating partial unique indexes...")
	indexSQL := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_requests_pending_pair
			ON requests (sender_id, receiver_id)
			WHERE status = 'pending';`,
	}
	for _, sql := range indexSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Fatal("Error: Failed to create index:", err)
		}
	}

	color.Green("Migration completed successfully.")
}
