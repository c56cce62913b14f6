package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCodeTaken    = errors.New("collaboration code already exists")
	ErrCodeNotFound = errors.New("collaboration code not found")
)

type CollaborationCodeService struct {
	db *gorm.DB
}

func NewCollaborationCodeService(db *gorm.DB) *CollaborationCodeService {
	return &CollaborationCodeService{db: db}
}

// List returns every code, active and inactive, newest first.
func (s *CollaborationCodeService) List() ([]models.CollaborationCode, error) {
	var codes []models.CollaborationCode
	if err := s.db.Order("created_at DESC").Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to list collaboration codes: %w", err)
	}
	return codes, nil
}

func (s *CollaborationCodeService) Create(req *dto.CreateCollaborationCodeRequest) (*models.CollaborationCode, error) {
	var existing models.CollaborationCode
	if err := s.db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		return nil, ErrCodeTaken
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	code := models.CollaborationCode{
		ID:       uuid.New(),
		Code:     req.Code,
		IsActive: isActive,
	}

	if err := s.db.Create(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to create collaboration code: %w", err)
	}

	return &code, nil
}

func (s *CollaborationCodeService) SetActive(id uuid.UUID, isActive bool) (*models.CollaborationCode, error) {
	var code models.CollaborationCode
	if err := s.db.First(&code, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to fetch collaboration code: %w", err)
	}

	if err := s.db.Model(&code).Update("is_active", isActive).Error; err != nil {
		return nil, fmt.Errorf("failed to update collaboration code: %w", err)
	}

	code.IsActive = isActive
	return &code, nil
}

// Delete removes the code. Customers already referencing it keep their
// dangling code value.
func (s *CollaborationCodeService) Delete(id uuid.UUID) error {
	var code models.CollaborationCode
	if err := s.db.First(&code, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeNotFound
		}
		return fmt.Errorf("failed to fetch collaboration code: %w", err)
	}

	if err := s.db.Delete(&code).Error; err != nil {
		return fmt.Errorf("failed to delete collaboration code: %w", err)
	}
	return nil
}
