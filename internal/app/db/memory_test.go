package db

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soaresgus/community-backend/internal/app/user"
)

func member(ign, email string, discord *string) user.User {
	return user.User{
		Name:            ign,
		Surname:         "Test",
		NameWithSurname: ign + " Test",
		IGN:             ign,
		Email:           email,
		Discord:         discord,
		Role:            user.RoleMember,
		Permissions:     user.DefaultPermissions(),
	}
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("6f1c1f8e-54b7-4a4b-9d0e-2f0f2c9b1a11"))
	assert.False(t, ValidID("6f1c1f8e54b74a4b9d0e2f0f2c9b1a11"))
	assert.False(t, ValidID("{6f1c1f8e-54b7-4a4b-9d0e-2f0f2c9b1a1}"))
	assert.False(t, ValidID("abc"))
	assert.False(t, ValidID(""))
}

func TestMemoryStore_CreateAssignsIdentity(t *testing.T) {
	m := NewMemoryStore()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	u, err := m.Create(context.Background(), member("Steve", "steve@example.com", nil))
	require.NoError(t, err)

	assert.True(t, m.ValidID(u.ID))
	assert.Equal(t, fixed, u.CreatedAt)
	assert.Equal(t, fixed, u.UpdatedAt)
}

func TestMemoryStore_Uniqueness(t *testing.T) {
	ctx := context.Background()
	discord := "steve#1"

	m := NewMemoryStore()
	_, err := m.Create(ctx, member("Steve", "steve@example.com", &discord))
	require.NoError(t, err)

	_, err = m.Create(ctx, member("STEVE", "other@example.com", nil))
	assert.ErrorIs(t, err, user.ErrConflict)

	_, err = m.Create(ctx, member("Alex", "Steve@Example.com", nil))
	assert.ErrorIs(t, err, user.ErrConflict)

	same := "steve#1"
	_, err = m.Create(ctx, member("Alex", "alex@example.com", &same))
	assert.ErrorIs(t, err, user.ErrConflict)

	_, err = m.Create(ctx, member("Alex", "alex@example.com", nil))
	assert.NoError(t, err)
}

func TestMemoryStore_FindConflict(t *testing.T) {
	ctx := context.Background()
	discord := "steve#1"

	m := NewMemoryStore()
	created, err := m.Create(ctx, member("Steve", "steve@example.com", &discord))
	require.NoError(t, err)

	got, err := m.FindConflict(ctx, "nobody@example.com", "steve#1", "nobody")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = m.FindConflict(ctx, "nobody@example.com", "", "nobody")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestMemoryStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	m := NewMemoryStore()
	created, err := m.Create(ctx, member("Steve", "steve@example.com", nil))
	require.NoError(t, err)

	later := created.CreatedAt.Add(time.Hour)
	m.now = func() time.Time { return later }

	created.Name = "Steven"
	updated, err := m.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Steven", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)

	require.NoError(t, m.Delete(ctx, created.ID))
	assert.ErrorIs(t, m.Delete(ctx, created.ID), user.ErrNotFound)

	_, err = m.Update(ctx, created)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	discord := "steve#1"

	m := NewMemoryStore()
	created, err := m.Create(ctx, member("Steve", "steve@example.com", &discord))
	require.NoError(t, err)

	*created.Discord = "changed"
	discord = "changed too"

	got, err := m.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "steve#1", *got.Discord)
}

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()

	m := NewMemoryStore()
	for _, ign := range []string{"a1a", "b2b", "c3c"} {
		_, err := m.Create(ctx, member(ign, ign+"@example.com", nil))
		require.NoError(t, err)
	}

	got, err := m.List(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b2b", got[0].IGN)
	assert.Equal(t, "c3c", got[1].IGN)

	got, err = m.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = m.List(ctx, -4, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1a", got[0].IGN)

	got, err = m.List(ctx, 2, math.MaxInt)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c3c", got[0].IGN)
}

func TestMemoryStore_ConcurrentCreateKeepsIdentitiesUnique(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		oks int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Create(ctx, member("Steve", "steve@example.com", nil)); err == nil {
				mu.Lock()
				oks++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, oks)
}
