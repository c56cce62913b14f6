package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken    = errors.New("email already in use")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserProtected = errors.New("this user cannot be deleted")
	ErrDeleteDenied  = errors.New("missing permission to delete users")
)

// protectedEmails are the two founder accounts that can never be deleted,
// regardless of the acting principal's flags.
var protectedEmails = []string{"gokhan@kampus.com", "emre@kampus.com"}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns all staff accounts, newest first.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),

		CanManageCustomers:          req.CanManageCustomers,
		CanManageFinancial:          req.CanManageFinancial,
		CanManageCollaborationCodes: req.CanManageCollaborationCodes,
		CanViewCollaborationStats:   req.CanViewCollaborationStats,
		CanManageAccess:             req.CanManageAccess,
		CanDeleteUsers:              req.CanDeleteUsers,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index is the authoritative guard against a racing create.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Update applies a partial patch. Only fields present in the request change;
// the capability flags are tri-state (nil = unchanged).
func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		var existing models.User
		if err := s.db.Where("email = ? AND id <> ?", *req.Email, id).First(&existing).Error; err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if req.CanManageCustomers != nil {
		user.CanManageCustomers = *req.CanManageCustomers
	}
	if req.CanManageFinancial != nil {
		user.CanManageFinancial = *req.CanManageFinancial
	}
	if req.CanManageCollaborationCodes != nil {
		user.CanManageCollaborationCodes = *req.CanManageCollaborationCodes
	}
	if req.CanViewCollaborationStats != nil {
		user.CanViewCollaborationStats = *req.CanViewCollaborationStats
	}
	if req.CanManageAccess != nil {
		user.CanManageAccess = *req.CanManageAccess
	}
	if req.CanDeleteUsers != nil {
		user.CanDeleteUsers = *req.CanDeleteUsers
	}

	if err := s.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// Delete hard-deletes a staff account. The protected founder accounts are
// refused before the actor's delete_users flag is consulted; both checks are
// mandatory and either failing is a Forbidden outcome.
func (s *UserService) Delete(actor *models.User, id uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	for _, email := range protectedEmails {
		if user.Email == email {
			return ErrUserProtected
		}
	}

	if actor == nil || !actor.CanDeleteUsers {
		return ErrDeleteDenied
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
