package user

import (
	"context"
	"errors"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"
	"Gardener-Assistant-Backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (string, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, domain.ErrPasswordHashingError
	}

	gardener := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Role:     domain.RoleGardener,
	}

	if err := s.userRepository.CreateUser(ctx, gardener); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    gardener.ID.String(),
		Name:  gardener.Name,
		Email: gardener.Email,
	}, nil
}

// Login returns the signed token; the handler places it in the envelope's
// "data" field, which is all the app persists.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	gardener, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrCredentialsWrong
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(gardener.Password), []byte(req.Password)); err != nil {
		return "", domain.ErrCredentialsWrong
	}

	return s.jwtService.GenerateTokenUser(gardener.ID.String(), gardener.Role), nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	gardener, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:    gardener.ID.String(),
		Name:  gardener.Name,
		Email: gardener.Email,
		Phone: gardener.Phone,
		Role:  gardener.Role,
	}, nil
}
