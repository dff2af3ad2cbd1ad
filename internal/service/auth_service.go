package service

import (
	"context"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/auth"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string) AuthService {
	return &authService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// Login verifies credentials and returns a signed session token. Unknown
// user and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.jwtSecret, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}
