package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/storage"
	"github.com/grachmannico95/casedesk-be/mocks"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
	"github.com/grachmannico95/casedesk-be/pkg/token"
)

func newTestAuthService(users domain.UserRepository) *authService {
	svc := NewAuthService(users, token.NewManager("test-secret", time.Hour), logger.NewNop()).(*authService)
	svc.cost = bcrypt.MinCost
	return svc
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(storage.NewMemoryStore())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "new@example.com", "secret1", "New User")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperator, registered.User.Role)
	assert.NotEmpty(t, registered.Token)

	loggedIn, err := svc.Login(ctx, "new@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	user, err := svc.Authenticate(ctx, loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, "New User", user.Name)
	assert.NoError(t, svc.ValidateToken(ctx, loggedIn.Token))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := newTestAuthService(storage.NewMemoryStore())
	ctx := context.Background()
	require.NoError(t, svc.EnsureUser(ctx, "taken@example.com", "password123", "Taken", domain.RoleOperator))

	tests := []struct {
		name     string
		email    string
		password string
		userName string
		expected error
	}{
		{name: "missing email", password: "secret1", userName: "A", expected: domain.ErrMissingFields},
		{name: "missing name", email: "a@example.com", password: "secret1", expected: domain.ErrMissingFields},
		{name: "short password", email: "a@example.com", password: "12345", userName: "A", expected: domain.ErrWeakPassword},
		{name: "duplicate", email: "taken@example.com", password: "secret1", userName: "A", expected: domain.ErrUserExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password, tt.userName)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc := newTestAuthService(storage.NewMemoryStore())
	ctx := context.Background()
	require.NoError(t, svc.EnsureUser(ctx, "test@example.com", "password123", "Test User", domain.RoleAdmin))

	_, err := svc.Login(ctx, "test@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "password123")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	result, err := svc.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestAuthService_EnsureUserIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	require.NoError(t, svc.EnsureUser(ctx, "test@example.com", "password123", "Test User", domain.RoleAdmin))
	require.NoError(t, svc.EnsureUser(ctx, "test@example.com", "other", "Other", domain.RoleOperator))

	user, err := store.FindUserByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Test User", user.Name)
}

func TestAuthService_AuthenticateRejectsBadTokens(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	orphan, _, err := token.NewManager("test-secret", time.Hour).Generate("deleted-user", "x@example.com", "OPERATOR")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, orphan)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	foreign, _, err := token.NewManager("other-secret", time.Hour).Generate("deleted-user", "x@example.com", "OPERATOR")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.ValidateToken(ctx, foreign), domain.ErrUnauthenticated)
}

func TestAuthService_LoginRepositoryError(t *testing.T) {
	// Setup
	users := mocks.NewMockUserRepository(t)
	svc := newTestAuthService(users)
	repoErr := errors.New("connection lost")

	// Mock expectations
	users.EXPECT().FindUserByEmail(mock.Anything, "test@example.com").Return(nil, repoErr).Once()

	// Execute
	_, err := svc.Login(context.Background(), "test@example.com", "password123")

	// Assert
	assert.ErrorIs(t, err, repoErr)
}
