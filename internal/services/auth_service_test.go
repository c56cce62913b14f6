package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/config"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret: "auth-test-secret",
		JWTExpiry: time.Hour,
	}
}

func seedLoginUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestAuthServiceLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testAuthConfig()
	svc := NewAuthService(db, cfg)
	user := seedLoginUser(t, db, "staff@kampus.com", "s3cret")

	resp, err := svc.Login(&dto.LoginRequest{Email: "staff@kampus.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, user.Email, claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(cfg.JWTExpiry), exp.Time, time.Minute)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testAuthConfig())
	seedLoginUser(t, db, "staff@kampus.com", "s3cret")

	_, err := svc.Login(&dto.LoginRequest{Email: "staff@kampus.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@kampus.com", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
