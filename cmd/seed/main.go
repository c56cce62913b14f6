// Seed creates the founder staff accounts when they do not exist yet. Safe
// to run repeatedly; existing emails are skipped.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/config"
	"github.com/kampusapp/admin-backend/internal/database"
	"github.com/kampusapp/admin-backend/internal/logging"
	"github.com/kampusapp/admin-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var founderEmails = []string{"gokhan@kampus.com", "emre@kampus.com"}

func main() {
	logging.Bootstrap()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		slog.Error("SEED_ADMIN_PASSWORD environment variable is required")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	for _, email := range founderEmails {
		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			slog.Info("user already exists, skipping", "email", email)
			continue
		}

		user := models.User{
			ID:       uuid.New(),
			Email:    email,
			Password: string(hash),

			CanManageCustomers:          true,
			CanManageFinancial:          true,
			CanManageCollaborationCodes: true,
			CanViewCollaborationStats:   true,
			CanManageAccess:             true,
			CanDeleteUsers:              true,
		}

		if err := db.Create(&user).Error; err != nil {
			slog.Error("failed to create user", "email", email, "error", err)
			os.Exit(1)
		}
		slog.Info("user created", "email", email)
	}

	slog.Info("seed completed")
}
