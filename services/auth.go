package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sugarsphere/sweetshop-api/auth"
	"github.com/sugarsphere/sweetshop-api/models"
	"github.com/sugarsphere/sweetshop-api/repository"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string        `json:"token"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Roles    []models.Role `json:"roles"`
}

type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
}

func NewAuthService(users repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := s.checkAvailable(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		Roles:    []models.Role{models.RoleUser},
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	return s.respondWithToken(user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respondWithToken(user)
}

// CreateAdmin registers a user that carries both roles. Used by the bootstrap
// endpoint and the startup seeder.
func (s *AuthService) CreateAdmin(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := s.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: string(hashed),
		Roles:    []models.Role{models.RoleAdmin, models.RoleUser},
	}
	if err := s.users.Insert(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// PromoteToAdmin adds the ADMIN role to an existing user; already-admin is a no-op.
func (s *AuthService) PromoteToAdmin(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !user.IsAdmin() {
		user.Roles = append(user.Roles, models.RoleAdmin)
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// EnsureAdminUser seeds the admin account on startup when it does not exist.
func (s *AuthService) EnsureAdminUser(ctx context.Context, username, email, password string) error {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		log.Println("ℹ️ Admin user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := s.CreateAdmin(ctx, username, email, password); err != nil {
		return err
	}
	log.Printf("✅ Admin user %q created", username)
	return nil
}

func (s *AuthService) checkAvailable(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if _, err := s.users.FindByEmail(ctx, strings.ToLower(email)); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) respondWithToken(user *models.User) (*AuthResponse, error) {
	token, err := auth.IssueToken(user, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles,
	}, nil
}
