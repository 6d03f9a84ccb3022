package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/sequence"
)

// AuthService handles registration, login and account deletion.
type AuthService struct {
	userRepo  repositories.UserRepository
	seq       sequence.Generator
	log       *logrus.Entry
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, seq sequence.Generator, log *logrus.Entry, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		seq:       seq,
		log:       log,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// Register creates a new account and returns its id. The raw password is
// never stored, only the derived token.
func (s *AuthService) Register(email, password string) (int64, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		s.log.WithError(err).Error("failed to check existing email")
		return 0, err
	}

	id, err := s.seq.Next(sequence.UserID)
	if err != nil {
		s.log.WithError(err).Error("failed to assign user id")
		return 0, err
	}

	user := &models.User{
		ID:            id,
		Email:         email,
		PasswordToken: PasswordToken(password),
	}
	if err := s.userRepo.Create(user); err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("failed to register user")
		return 0, fmt.Errorf("failed to register user: %w", err)
	}
	return id, nil
}

// Login verifies email and password and returns the user id plus a signed
// token. A missing account and a wrong password are indistinguishable.
func (s *AuthService) Login(email, password string) (int64, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, "", ErrInvalidCredentials
		}
		s.log.WithError(err).Error("failed to look up user for login")
		return 0, "", err
	}

	supplied := PasswordToken(password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(user.PasswordToken)) != 1 {
		return 0, "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.log.WithError(err).Error("failed to sign token")
		return 0, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user.ID, signed, nil
}

// GetByID returns the account with the given id.
func (s *AuthService) GetByID(id int64) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// DeleteAccount removes an account. It demands the confirmation sentinel and
// a matching password; any mismatch is rejected, never silently ignored.
func (s *AuthService) DeleteAccount(id int64, email, password, confirm string) error {
	if confirm != ConfirmDeletion {
		return ErrConfirmationRequired
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user.Email != email {
		return repositories.ErrNotFound
	}

	supplied := PasswordToken(password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(user.PasswordToken)) != 1 {
		return ErrIncorrectPassword
	}

	if err := s.userRepo.Delete(id); err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("failed to delete user")
		return err
	}
	return nil
}

// ValidateToken parses and validates a signed token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
