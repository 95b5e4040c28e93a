package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
	"github.com/grachmannico95/casedesk-be/pkg/token"
)

const minPasswordLength = 6

type AuthResult struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Authenticate(ctx context.Context, tokenString string) (*domain.User, error)
	ValidateToken(ctx context.Context, tokenString string) error
	EnsureUser(ctx context.Context, email, password, name string, role domain.Role) error
}

type authService struct {
	users  domain.UserRepository
	tokens *token.Manager
	logger *logger.Logger
	cost   int
}

func NewAuthService(users domain.UserRepository, tokens *token.Manager, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: log,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, domain.ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	user, err := s.createUser(ctx, email, password, name, domain.RoleOperator)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error(ctx, "Failed to register user", "email", email, "error", err)
		}
		return nil, err
	}

	s.logger.Info(logger.WithUserID(ctx, user.ID), "User registered", "email", email)

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.Warn(ctx, "Login rejected", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info(logger.WithUserID(ctx, user.ID), "User logged in")

	return s.issue(user)
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		s.logger.Debug(ctx, "Token rejected", "error", err)
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) error {
	_, err := s.Authenticate(ctx, tokenString)
	return err
}

// EnsureUser creates the user unless the email is already registered.
func (s *authService) EnsureUser(ctx context.Context, email, password, name string, role domain.Role) error {
	_, err := s.createUser(ctx, email, password, name, role)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}

func (s *authService) createUser(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, error) {
	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	return s.users.CreateUser(ctx, domain.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	})
}

func (s *authService) issue(user *domain.User) (*AuthResult, error) {
	signed, expiresAt, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: signed, ExpiresAt: expiresAt}, nil
}
