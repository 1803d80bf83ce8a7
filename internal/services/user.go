package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/apperrors"
	"github.com/sumit03062/Task-Tracker/internal/models"
)

// ErrInvalidCredentials is returned by Authenticate for a wrong email
// or password. Handlers map it to 401 without saying which was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(name, email, password, country string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apperrors.InvalidInput("name is required")
	}

	if email == "" {
		return nil, apperrors.InvalidInput("email is required")
	}

	if password == "" {
		return nil, apperrors.InvalidInput("password is required")
	}

	var existing models.User

	err := s.db.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, apperrors.InvalidInput("email already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Unexpected(err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Country:      strings.TrimSpace(country),
		PasswordHash: string(passwordHash),
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Unexpected(err)
	}

	return user, nil
}

func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User

	err := s.db.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.Unexpected(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *UserService) Profile(userID uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Unexpected(err)
	}

	return &user, nil
}
