package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store/inmem"
)

func newAuthFixture() (*AuthService, *inmem.UserRepository) {
	db := inmem.Open()
	users := inmem.NewUserRepository(db)
	return NewAuthService(inmem.NewAccountRepository(db), users, "test-secret"), users
}

func TestRegisterCreatesPendingStudentProfile(t *testing.T) {
	auth, users := newAuthFixture()
	ctx := context.Background()

	id, err := auth.Register(ctx, "aluno@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	profile, err := users.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "aluno@example.com", profile.Email)
	assert.Equal(t, models.RoleStudent, profile.Role)
	assert.False(t, profile.Approved)
	assert.Equal(t, 0, profile.Score)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	auth, _ := newAuthFixture()
	ctx := context.Background()

	_, err := auth.Register(ctx, "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = auth.Register(ctx, "aluno@example.com", "12345")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = auth.Register(ctx, "aluno@example.com", "secret1")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "aluno@example.com", "another1")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestSignIn(t *testing.T) {
	auth, _ := newAuthFixture()
	ctx := context.Background()

	id, err := auth.Register(ctx, "aluno@example.com", "secret1")
	require.NoError(t, err)

	got, err := auth.SignIn(ctx, "aluno@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = auth.SignIn(ctx, "aluno@example.com", "wrong-1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.SignIn(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	auth, _ := newAuthFixture()

	token, err := auth.GenerateToken("user-1")
	require.NoError(t, err)

	userID, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = auth.ValidateToken("not.a.token")
	assert.Error(t, err)

	other := NewAuthService(nil, nil, "other-secret")
	forged, err := other.GenerateToken("user-1")
	require.NoError(t, err)
	_, err = auth.ValidateToken(forged)
	assert.Error(t, err)
}
