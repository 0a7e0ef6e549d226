package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/colabora-dev/colabora/db"
	"github.com/colabora-dev/colabora/internal/repository"
	"github.com/colabora-dev/colabora/internal/seed"
)

// Prepares the database the terminal UI runs against: connect, migrate,
// seed, report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := db.Config{
		DSN:        os.Getenv("DATABASE_URL"),
		SQLitePath: os.Getenv("DATABASE_PATH"),
	}

	conn, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(conn); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	seedsDir := os.Getenv("SEEDS_PATH")
	if seedsDir == "" {
		seedsDir = "seeds"
	}

	if err := seed.New(conn, logger, seedsDir).Run(); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	users, _ := repository.NewUserRepository(conn, logger).Count()
	orgs, _ := repository.NewOrganizationRepository(conn, logger).Count()
	projects, _ := repository.NewProjectRepository(conn, logger).Count()
	habilities, _ := repository.NewHabilityRepository(conn, logger).Count()

	logger.Info("database ready",
		zap.Int64("users", users),
		zap.Int64("organizations", orgs),
		zap.Int64("projects", projects),
		zap.Int64("habilities", habilities),
	)
}
