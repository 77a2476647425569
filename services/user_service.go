package services

import (
	"errors"
	"fmt"

	"rental-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

// NewUserService constructor for dependency injection.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

var (
	ErrUserNotFound = errors.New("user_not_found")
	ErrEmailTaken   = errors.New("email_taken")
)

// Create hashes the password and stores the user. GORM writes the new ID
// back through the pointer.
func (s *UserService) Create(user *models.User, plainPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	if user.Role == "" {
		user.Role = models.RoleGuest
	}

	if err := s.DB.Create(user).Error; err != nil {
		if isConflictError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, err
}
