package services

import (
	"context"
	"errors"
	"time"

	"visionflow/internal/domain/user"
	"visionflow/internal/repository"
	vferrors "visionflow/pkg/errors"
	"visionflow/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
	mail     DeliverabilityChecker
	log      *logger.Logger
}

func NewAuthService(userRepo repository.UserRepository, mail DeliverabilityChecker, log *logger.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, mail: mail, log: log}
}

// Register creates an account. The existence check runs before the
// deliverability call so a duplicate never spends a validation lookup.
// The check-then-insert race is closed by the repository mapping unique
// violations back to the same conflict error.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	if !validEmail(email) {
		return "", vferrors.ErrInvalidEmail
	}
	if password == "" {
		return "", vferrors.ErrInvalidInput
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Errorf("register: user lookup failed: %s", err)
		return "", vferrors.ErrDatabase
	}
	if exists {
		return "", vferrors.ErrUserExists
	}

	deliverable, err := s.mail.Check(ctx, email)
	if err != nil {
		s.log.Errorf("register: deliverability check failed: %s", err)
		return "", vferrors.ErrVerificationFailed
	}
	if !deliverable {
		return "", vferrors.ErrNotDeliverable
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return "", err
	}

	return email, nil
}

// Login checks the credentials and returns the email only. The stored
// hash never leaves this package.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if !validEmail(email) {
		return "", vferrors.ErrInvalidEmail
	}
	if password == "" {
		return "", vferrors.ErrInvalidInput
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, vferrors.ErrUserNotFound) {
			s.log.Errorf("login: user lookup failed: %s", err)
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", vferrors.ErrWrongPassword
	}

	return u.Email, nil
}
