package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.CollaborationCode{},
	))

	return db
}

func createTestCode(t *testing.T, db *gorm.DB, code string, active bool, createdAt time.Time) *models.CollaborationCode {
	t.Helper()

	record := models.CollaborationCode{
		ID:       uuid.New(),
		Code:     code,
		IsActive: active,
	}
	require.NoError(t, db.Create(&record).Error)
	if !createdAt.IsZero() {
		require.NoError(t, db.Model(&record).Update("created_at", createdAt).Error)
		record.CreatedAt = createdAt
	}
	return &record
}

func createTestCustomer(t *testing.T, db *gorm.DB, name, prices string, code *string, createdAt time.Time) *models.Customer {
	t.Helper()

	record := models.Customer{
		ID:      uuid.New(),
		Name:    name,
		Surname: "Tester",
		Phone:   "5550000000",
		Email:   name + "@example.com",
		Grade:   "12",
		Camps:   `["summer"]`,
		Prices:  prices,
		Code:    code,
		City:    "Ankara",
	}
	require.NoError(t, db.Create(&record).Error)
	if !createdAt.IsZero() {
		require.NoError(t, db.Model(&record).Update("created_at", createdAt).Error)
		record.CreatedAt = createdAt
	}
	return &record
}
