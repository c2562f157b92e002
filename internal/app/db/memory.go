package db

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soaresgus/community-backend/internal/app/user"
)

// MemoryStore keeps users in process memory, in insertion order.
// It enforces the same identity uniqueness as the PostgreSQL indexes.
type MemoryStore struct {
	// mu protects concurrent access to users.
	mu sync.RWMutex

	users []user.User

	// now is the clock used for timestamps.
	now func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) ValidID(id string) bool {
	return ValidID(id)
}

func (m *MemoryStore) List(_ context.Context, offset, limit int) ([]user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	offset = max(offset, 0)

	out := []user.User{}
	if offset >= len(m.users) || limit < 1 {
		return out, nil
	}

	end := len(m.users)
	if limit < end-offset {
		end = offset + limit
	}
	for _, u := range m.users[offset:end] {
		out = append(out, clone(u))
	}
	return out, nil
}

func (m *MemoryStore) FindByID(_ context.Context, id string) (user.User, error) {
	return m.first(func(u user.User) bool { return u.ID == id })
}

func (m *MemoryStore) FindByIGN(_ context.Context, ign string) (user.User, error) {
	return m.first(func(u user.User) bool { return strings.EqualFold(u.IGN, ign) })
}

func (m *MemoryStore) FindByEmail(_ context.Context, email string) (user.User, error) {
	return m.first(func(u user.User) bool { return strings.EqualFold(u.Email, email) })
}

func (m *MemoryStore) FindConflict(_ context.Context, email, discord, ign string) (user.User, error) {
	return m.first(func(u user.User) bool {
		return collides(u, email, discord, ign)
	})
}

func (m *MemoryStore) Create(_ context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.taken(u, "") {
		return user.User{}, user.ErrConflict
	}

	now := m.now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	m.users = append(m.users, clone(u))
	return clone(u), nil
}

func (m *MemoryStore) Update(_ context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(u.ID)
	if i < 0 {
		return user.User{}, user.ErrNotFound
	}

	if m.taken(u, u.ID) {
		return user.User{}, user.ErrConflict
	}

	u.CreatedAt = m.users[i].CreatedAt
	u.UpdatedAt = m.now()

	m.users[i] = clone(u)
	return clone(u), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return user.ErrNotFound
	}

	m.users = append(m.users[:i], m.users[i+1:]...)
	return nil
}

func (m *MemoryStore) first(match func(user.User) bool) (user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if match(u) {
			return clone(u), nil
		}
	}
	return user.User{}, user.ErrNotFound
}

// index must be called with mu held.
func (m *MemoryStore) index(id string) int {
	for i, u := range m.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// taken must be called with mu held. The user with id skip is ignored.
func (m *MemoryStore) taken(u user.User, skip string) bool {
	var discord string
	if u.Discord != nil {
		discord = *u.Discord
	}

	for _, existing := range m.users {
		if existing.ID != skip && collides(existing, u.Email, discord, u.IGN) {
			return true
		}
	}
	return false
}

func collides(u user.User, email, discord, ign string) bool {
	if strings.EqualFold(u.Email, email) || strings.EqualFold(u.IGN, ign) {
		return true
	}
	return discord != "" && u.Discord != nil && *u.Discord == discord
}

// clone copies u so callers never share the Discord pointer with the store.
func clone(u user.User) user.User {
	if u.Discord != nil {
		d := *u.Discord
		u.Discord = &d
	}
	return u
}
