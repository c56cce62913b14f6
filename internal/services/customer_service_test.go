package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerRequest(prices, code string) *dto.CreateCustomerRequest {
	return &dto.CreateCustomerRequest{
		Name:    "Ayse",
		Surname: "Yilmaz",
		Phone:   "5551234567",
		Email:   "ayse@example.com",
		Grade:   "11",
		Camps:   `["winter"]`,
		Prices:  prices,
		Code:    code,
		City:    "Istanbul",
	}
}

func TestCustomerServiceCreateWithoutCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	customer, err := svc.Create(newCustomerRequest("1000,2000", ""))
	require.NoError(t, err)
	assert.Nil(t, customer.Code)
	assert.False(t, customer.IsDeleted)
	assert.Equal(t, "[1000,2000]", customer.Prices)
}

func TestCustomerServiceCreatePricesStoredVerbatimWhenJSON(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	customer, err := svc.Create(newCustomerRequest("[1000,2000.5]", ""))
	require.NoError(t, err)
	assert.Equal(t, "[1000,2000.5]", customer.Prices)
}

func TestCustomerServiceCreateMalformedPrices(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.Create(newCustomerRequest("1000,abc", ""))
	assert.ErrorIs(t, err, ErrInvalidPrices)
}

func TestCustomerServiceCreateCodeValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	createTestCode(t, db, "SUMMER10", true, time.Time{})
	createTestCode(t, db, "RETIRED", false, time.Time{})

	t.Run("active code accepted", func(t *testing.T) {
		customer, err := svc.Create(newCustomerRequest("500", "SUMMER10"))
		require.NoError(t, err)
		require.NotNil(t, customer.Code)
		assert.Equal(t, "SUMMER10", *customer.Code)
	})

	t.Run("inactive code rejected", func(t *testing.T) {
		_, err := svc.Create(newCustomerRequest("500", "RETIRED"))
		assert.ErrorIs(t, err, ErrInvalidCollaborationCode)
	})

	t.Run("unknown code rejected", func(t *testing.T) {
		_, err := svc.Create(newCustomerRequest("500", "NOPE"))
		assert.ErrorIs(t, err, ErrInvalidCollaborationCode)
	})
}

func TestCustomerServiceSoftDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	customer := createTestCustomer(t, db, "gone", "[100]", nil, time.Time{})

	require.NoError(t, svc.SoftDelete(customer.ID, "moved away"))

	var stored models.Customer
	require.NoError(t, db.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.IsDeleted)
	require.NotNil(t, stored.DeletedReason)
	assert.Equal(t, "moved away", *stored.DeletedReason)
}

func TestCustomerServiceSoftDeleteDefaultReason(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	customer := createTestCustomer(t, db, "unpaid", "[100]", nil, time.Time{})

	require.NoError(t, svc.SoftDelete(customer.ID, ""))

	var stored models.Customer
	require.NoError(t, db.First(&stored, "id = ?", customer.ID).Error)
	require.NotNil(t, stored.DeletedReason)
	assert.Equal(t, DefaultDeleteReason, *stored.DeletedReason)
}

func TestCustomerServiceSoftDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	err := svc.SoftDelete(uuid.New(), "")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerServiceListHidesSoftDeleted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	kept := createTestCustomer(t, db, "kept", "[100]", nil, time.Now().Add(-time.Hour))
	deleted := createTestCustomer(t, db, "dropped", "[200]", nil, time.Time{})
	require.NoError(t, svc.SoftDelete(deleted.ID, ""))

	visible, err := svc.List(false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, kept.ID, visible[0].ID)

	all, err := svc.List(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, deleted.ID, all[0].ID)
}
