package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/soaresgus/community-backend/internal/pkg/valid"
)

var (
	// ErrInvalidID is returned when an identifier does not match the Store's key format.
	ErrInvalidID = errors.New("user: invalid identifier")

	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user: not found")

	// ErrConflict is returned when the email, discord or ign is already taken.
	ErrConflict = errors.New("user: email, discord or ign already registered")
)

// Store is the persistence collaborator of the Service.
//
// Find* methods return ErrNotFound when nothing matches. Create and Update
// return ErrConflict when the store rejects a duplicate identity.
type Store interface {
	// ValidID reports whether id has the store's native key format.
	ValidID(id string) bool

	// List returns up to limit users after skipping offset, in insertion order.
	List(ctx context.Context, offset, limit int) ([]User, error)

	FindByID(ctx context.Context, id string) (User, error)

	// FindByIGN and FindByEmail match case-insensitively; the first match wins.
	FindByIGN(ctx context.Context, ign string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)

	// FindConflict returns the first user whose email or ign (case-insensitive)
	// or discord (exact, skipped when empty) equals the given value.
	FindConflict(ctx context.Context, email, discord, ign string) (User, error)

	// Create assigns the id and timestamps and returns the stored record.
	Create(ctx context.Context, u User) (User, error)

	// Update replaces the record with u.ID, refreshing UpdatedAt.
	Update(ctx context.Context, u User) (User, error)

	Delete(ctx context.Context, id string) error
}

// Service implements the account operations on top of a Store.
type Service struct {
	store   Store
	hasher  PasswordHasher
	avatars AvatarTemplate
}

// NewService wires a Service to its collaborators.
func NewService(store Store, hasher PasswordHasher, avatars AvatarTemplate) *Service {
	return &Service{
		store:   store,
		hasher:  hasher,
		avatars: avatars,
	}
}

// ValidID reports whether id has the store's key format.
func (s *Service) ValidID(id string) bool {
	return s.store.ValidID(id)
}

// List returns one page of users in stored order.
func (s *Service) List(ctx context.Context, page valid.Page) ([]User, error) {
	if page.Page < 1 || page.Limit < 1 {
		return nil, &valid.Error{Fields: []valid.FieldError{{Field: "page", Rule: valid.RuleTooSmall, Param: "1"}}}
	}
	if page.Limit > valid.MaxLimit {
		return nil, &valid.Error{Fields: []valid.FieldError{{Field: "limit", Rule: valid.RuleTooLarge, Param: strconv.Itoa(valid.MaxLimit)}}}
	}

	users, err := s.store.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByID loads a single user.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if !s.store.ValidID(id) {
		return User{}, ErrInvalidID
	}

	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("find user %s: %w", id, err)
	}
	return u, nil
}

// GetByIGN loads a user by in-game name, ignoring case.
func (s *Service) GetByIGN(ctx context.Context, ign string) (User, error) {
	u, err := s.store.FindByIGN(ctx, ign)
	if err != nil {
		return User{}, fmt.Errorf("find user by ign: %w", err)
	}
	return u, nil
}

// GetByEmail loads a user by email, ignoring case.
func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Create registers a new user after checking that none of its identities is taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if err := valid.Struct(&in); err != nil {
		return User{}, err
	}

	var discord string
	if in.Discord != nil {
		discord = *in.Discord
	}

	_, err := s.store.FindConflict(ctx, in.Email, discord, in.IGN)
	switch {
	case err == nil:
		return User{}, ErrConflict
	case !errors.Is(err, ErrNotFound):
		return User{}, fmt.Errorf("check identity conflict: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		Name:            in.Name,
		Surname:         in.Surname,
		NameWithSurname: FullName(in.Name, in.Surname),
		Discord:         in.Discord,
		IGN:             in.IGN,
		Email:           in.Email,
		Password:        hash,
		AvatarURL:       in.AvatarURL,
		Role:            in.Role,
		Permissions:     DefaultPermissions(),
	}

	if u.AvatarURL == "" {
		u.AvatarURL = s.avatars.URL(in.IGN)
	}
	if u.Role == "" {
		u.Role = RoleMember
	}
	if in.Permissions != nil {
		u.Permissions = in.Permissions.Permissions()
	}

	created, err := s.store.Create(ctx, u)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Update changes the present fields of a user and merges its permission flags.
// Uniqueness is not re-checked here; a store constraint may still reject it.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	if !s.store.ValidID(id) {
		return User{}, ErrInvalidID
	}

	if err := valid.Struct(&in); err != nil {
		return User{}, err
	}

	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("find user %s: %w", id, err)
	}

	in.apply(&u)
	u.NameWithSurname = FullName(u.Name, u.Surname)

	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return User{}, fmt.Errorf("hash password: %w", err)
		}
		u.Password = hash
	}

	if in.Permissions != nil {
		u.Permissions = in.Permissions.Apply(u.Permissions)
	}

	updated, err := s.store.Update(ctx, u)
	if err != nil {
		return User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a user permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.store.ValidID(id) {
		return ErrInvalidID
	}

	if _, err := s.store.FindByID(ctx, id); err != nil {
		return fmt.Errorf("find user %s: %w", id, err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
