package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/services/user"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
	"github.com/magabrotheeeer/hrms-core/internal/storage/memory"
)

func seedUsers(t *testing.T, store *memory.Storage, n int) []*models.User {
	t.Helper()

	created := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := store.CreateUser(context.Background(), models.User{
			Email:    string(rune('a'+i)) + "@example.com",
			Name:     "User " + string(rune('A'+i)),
			Role:     models.RoleEmployee,
			IsActive: true,
		})
		require.NoError(t, err)
		created = append(created, u)
	}
	return created
}

func TestService_Get(t *testing.T) {
	store := memory.New()
	seeded := seedUsers(t, store, 1)
	svc := user.New(store)

	got, err := svc.Get(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[0].Email, got.Email)

	_, err = svc.Get(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestService_List(t *testing.T) {
	store := memory.New()
	seedUsers(t, store, 5)
	svc := user.New(store)
	ctx := context.Background()

	cases := []struct {
		name    string
		offset  int
		limit   int
		wantLen int
		firstID int64
	}{
		{name: "все пользователи", offset: 0, limit: 100, wantLen: 5, firstID: 1},
		{name: "страница со смещением", offset: 2, limit: 2, wantLen: 2, firstID: 3},
		{name: "смещение за пределами", offset: 10, limit: 10, wantLen: 0},
		{name: "нулевой лимит", offset: 0, limit: 0, wantLen: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users, err := svc.List(ctx, tc.offset, tc.limit)
			require.NoError(t, err)
			require.Len(t, users, tc.wantLen)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.firstID, users[0].ID)
			}
		})
	}
}

func TestService_List_EmptyStorageReturnsEmptySlice(t *testing.T) {
	svc := user.New(memory.New())

	users, err := svc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestService_Update(t *testing.T) {
	store := memory.New()
	seeded := seedUsers(t, store, 1)
	svc := user.New(store)
	ctx := context.Background()

	newName := "Renamed"
	newRole := models.RoleAdmin
	updated, err := svc.Update(ctx, seeded[0].ID, models.UserUpdate{
		Name: &newName,
		Role: &newRole,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	// Непереданные поля остаются прежними.
	assert.Equal(t, seeded[0].Email, updated.Email)
	assert.True(t, updated.IsActive)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := user.New(memory.New())

	name := "Nobody"
	_, err := svc.Update(context.Background(), 42, models.UserUpdate{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestService_Update_EmptyPatchKeepsState(t *testing.T) {
	store := memory.New()
	seeded := seedUsers(t, store, 1)
	svc := user.New(store)

	updated, err := svc.Update(context.Background(), seeded[0].ID, models.UserUpdate{})
	require.NoError(t, err)
	assert.Equal(t, seeded[0].Name, updated.Name)
	assert.Equal(t, seeded[0].Role, updated.Role)
}
