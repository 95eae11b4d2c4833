package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
)

func newAuthService(users *MockUserRepository) *AuthService {
	return NewAuthService(users, "test-secret", time.Hour, zap.NewNop())
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	user := &domain.User{
		ID:           bson.NewObjectID(),
		Email:        "admin@example.com",
		PasswordHash: hashFor(t, "hunter2"),
	}
	users.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

	token, err := svc.Login(context.Background(), "admin@example.com", "hunter2")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, user.ID.Hex(), claims.Subject)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	user := &domain.User{Email: "admin@example.com", PasswordHash: hashFor(t, "hunter2")}
	users.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

	token, err := svc.Login(context.Background(), "admin@example.com", "letmein")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), "nobody@example.com", "hunter2")

	// Unknown emails look exactly like wrong passwords.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Verify_RejectsGarbage(t *testing.T) {
	svc := newAuthService(new(MockUserRepository))

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Verify_RejectsOtherSecret(t *testing.T) {
	users := new(MockUserRepository)
	other := NewAuthService(users, "other-secret", time.Hour, zap.NewNop())

	user := &domain.User{ID: bson.NewObjectID(), Email: "admin@example.com", PasswordHash: hashFor(t, "pw")}
	users.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

	token, err := other.Login(context.Background(), "admin@example.com", "pw")
	assert.NoError(t, err)

	svc := newAuthService(new(MockUserRepository))
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_EnsureAdmin_SeedsWhenEmpty(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("Count", mock.Anything).Return(int64(0), nil)
	users.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "hunter2")

	assert.NoError(t, err)
	seeded := users.Calls[1].Arguments.Get(1).(*domain.User)
	assert.Equal(t, "admin@example.com", seeded.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seeded.PasswordHash), []byte("hunter2")))
}

func TestAuthService_EnsureAdmin_NoopWhenPopulated(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("Count", mock.Anything).Return(int64(1), nil)

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "hunter2")

	assert.NoError(t, err)
	users.AssertNotCalled(t, "Insert")
}

func TestAuthService_EnsureAdmin_NoopWithoutCredentials(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	err := svc.EnsureAdmin(context.Background(), "", "")

	assert.NoError(t, err)
	users.AssertNotCalled(t, "Count")
}
