package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/models"
	"github.com/kampusapp/admin-backend/internal/pricing"
	"gorm.io/gorm"
)

// DefaultDeleteReason is recorded when a customer is soft-deleted without an
// explicit reason.
const DefaultDeleteReason = "payment not received"

var (
	ErrCustomerNotFound         = errors.New("customer not found")
	ErrInvalidCollaborationCode = errors.New("invalid collaboration code")
	ErrInvalidPrices            = errors.New("invalid prices")
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// List returns customers newest first. Soft-deleted records are excluded
// unless includeDeleted is set.
func (s *CustomerService) List(includeDeleted bool) ([]models.Customer, error) {
	query := s.db.Model(&models.Customer{})
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var customers []models.Customer
	if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Create validates the referral code against the currently-active set and
// normalizes the price text into its stored JSON-array form.
func (s *CustomerService) Create(req *dto.CreateCustomerRequest) (*models.Customer, error) {
	var code *string
	if req.Code != "" {
		var existing models.CollaborationCode
		err := s.db.Where("code = ? AND is_active = ?", req.Code, true).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCollaborationCode
			}
			return nil, fmt.Errorf("failed to look up collaboration code: %w", err)
		}
		code = &req.Code
	}

	prices, err := pricing.Normalize(req.Prices)
	if err != nil {
		return nil, ErrInvalidPrices
	}

	var previousRank *string
	if req.PreviousRank != "" {
		previousRank = &req.PreviousRank
	}

	customer := models.Customer{
		ID:           uuid.New(),
		Name:         req.Name,
		Surname:      req.Surname,
		Phone:        req.Phone,
		Email:        req.Email,
		Grade:        req.Grade,
		Camps:        req.Camps,
		Prices:       prices,
		Code:         code,
		PreviousRank: previousRank,
		City:         req.City,
	}

	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

// SoftDelete marks the customer deleted and records the reason. There is no
// undelete.
func (s *CustomerService) SoftDelete(id uuid.UUID, reason string) error {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to fetch customer: %w", err)
	}

	if reason == "" {
		reason = DefaultDeleteReason
	}

	updates := map[string]interface{}{
		"is_deleted":     true,
		"deleted_reason": reason,
	}
	if err := s.db.Model(&customer).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
