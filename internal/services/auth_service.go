// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shelftrack/shelftrack-backend/internal/config"
	"github.com/shelftrack/shelftrack-backend/internal/database"
	"github.com/shelftrack/shelftrack-backend/internal/models"
	"github.com/shelftrack/shelftrack-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

// Register creates a user with a bcrypt digest of the password. The email is
// normalized to lower case before the lookup and the insert, so uniqueness is
// case-insensitive. The advisory pre-check keeps the common path friendly;
// the unique index on users.email is what actually closes the race.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	req.Email = models.NormalizeEmail(req.Email)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationErrorFromStruct(err)
	}

	user := &models.User{Email: req.Email}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Pre-check and insert share one transaction; the unique index still
	// decides between two racing registrations.
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if count > 0 {
			return NewValidationError("email", "has already been taken")
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, translateConstraintError(err)
	}

	return user, nil
}

// Authenticate returns the user matching email and password, or (nil, nil)
// when either the email is unknown or the password is wrong. Callers cannot
// tell which factor failed.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, nil
		}
		return nil, fmt.Errorf("password verification failed: %w", err)
	}

	return &user, nil
}

// Login wraps Authenticate and issues a signed session token.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationErrorFromStruct(err)
	}

	user, err := s.Authenticate(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return s.issueToken(user)
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) issueToken(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Email, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}
