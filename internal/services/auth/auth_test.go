package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/hrms-core/internal/lib/jwt"
	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/services/auth"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
	"github.com/magabrotheeeer/hrms-core/internal/storage/memory"
)

func newService(t *testing.T) (*auth.Service, *memory.Storage) {
	t.Helper()

	maker, err := jwt.NewJWTMaker("test-secret-key", "HS256", 30*time.Minute)
	require.NoError(t, err)

	store := memory.New()
	return auth.New(store, maker), store
}

func TestService_Register(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, models.User{
		Email: "alice@example.com",
		Name:  "Alice",
	}, "secret")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleEmployee, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.User{Email: "bob@example.com"}, "secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.User{Email: "bob@example.com"}, "other")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrEmailTaken)
}

func TestService_Register_KeepsExplicitRole(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Register(context.Background(), models.User{
		Email: "root@example.com",
		Role:  models.RoleSuperAdmin,
	}, "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, user.Role)
}

func TestService_Login(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.User{Email: "carol@example.com"}, "p1")
	require.NoError(t, err)

	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "успешный вход",
			email:    "carol@example.com",
			password: "p1",
		},
		{
			name:     "неверный пароль",
			email:    "carol@example.com",
			password: "wrong",
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "неизвестный email",
			email:    "nobody@example.com",
			password: "p1",
			wantErr:  auth.ErrInvalidCredentials,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := svc.Login(ctx, tc.email, tc.password)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, models.User{Email: "dave@example.com"}, "secret")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "dave@example.com", "secret")
	require.NoError(t, err)

	principal, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, principal.ID)
	assert.Equal(t, "dave@example.com", principal.Email)
}

func TestService_Authenticate_BadToken(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrMalformedToken)
}

func TestService_Authenticate_InactiveUser(t *testing.T) {
	maker, err := jwt.NewJWTMaker("test-secret-key", "HS256", 30*time.Minute)
	require.NoError(t, err)

	store := memory.New()
	_, err = store.CreateUser(context.Background(), models.User{
		Email:    "eve@example.com",
		Role:     models.RoleEmployee,
		IsActive: false,
	})
	require.NoError(t, err)

	token, err := maker.GenerateToken("eve@example.com")
	require.NoError(t, err)

	svc := auth.New(store, maker)
	_, err = svc.Authenticate(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInactiveUser)
}

func TestService_Authenticate_UnknownSubject(t *testing.T) {
	maker, err := jwt.NewJWTMaker("test-secret-key", "HS256", 30*time.Minute)
	require.NoError(t, err)
	svc := auth.New(memory.New(), maker)

	token, err := maker.GenerateToken("ghost@example.com")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUserNotFound))
}
