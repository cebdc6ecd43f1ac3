package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"markblog/internal/entity"
	"markblog/internal/repo/persistent"
	"markblog/pkg/cache"
	"markblog/pkg/jwt"
	"markblog/pkg/logger"
	"markblog/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(email, username, password, name string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	Logout(ctx context.Context, token string) error
	GetUser(userID string) (*entity.User, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	jwtService  *jwt.Service
	revocations *cache.RevocationStore
	s3Client    *s3.Client
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	revocations *cache.RevocationStore,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		revocations: revocations,
		s3Client:    s3Client,
		logger:      logger,
	}
}

func (uc *authUseCase) Register(email, username, password, name string) (*entity.User, string, error) {
	if email == "" || username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email, username and password are required", entity.ErrInvalidInput)
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: user with this email already exists", entity.ErrInvalidInput)
	}

	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", fmt.Errorf("%w: username already taken", entity.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Name:     name,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthenticated)
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

// Logout revokes the presented token until its natural expiry.
func (uc *authUseCase) Logout(ctx context.Context, token string) error {
	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return fmt.Errorf("%w: invalid token", entity.ErrUnauthenticated)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := uc.revocations.Revoke(ctx, token, ttl); err != nil {
		uc.logger.Error("Failed to revoke token: %v", err)
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	imageURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	user.Image = imageURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to save avatar for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	user.Password = ""
	return user, nil
}
