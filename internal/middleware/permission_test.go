package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/config"
	"github.com/kampusapp/admin-backend/internal/models"
	"github.com/kampusapp/admin-backend/internal/permissions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTSecret: testSecret}

	app := fiber.New()
	app.Get("/guarded",
		JWTProtected(cfg),
		LoadPrincipal(db),
		RequireCapability(permissions.ManageCustomers),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, canManageCustomers bool) *models.User {
	t.Helper()

	user := models.User{
		ID:                 uuid.New(),
		Email:              uuid.NewString() + "@kampus.com",
		Password:           "irrelevant",
		CanManageCustomers: canManageCustomers,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func requestWithToken(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGuardedRouteWithoutToken(t *testing.T) {
	app, _ := setupApp(t)

	resp := requestWithToken(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGuardedRouteWithGarbageToken(t *testing.T) {
	app, _ := setupApp(t)

	resp := requestWithToken(t, app, "not.a.jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGuardedRouteWithoutCapability(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db, false)

	resp := requestWithToken(t, app, signToken(t, user.ID))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGuardedRouteWithCapability(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db, true)

	resp := requestWithToken(t, app, signToken(t, user.ID))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardedRouteForDeletedAccount(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db, true)
	token := signToken(t, user.ID)

	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)

	resp := requestWithToken(t, app, token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
