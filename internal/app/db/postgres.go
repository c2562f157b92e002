package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/soaresgus/community-backend/internal/app/user"
)

const userColumns = `id, name, surname, name_with_surname, discord, ign, email, password,
	avatar_url, role, permissions, created_at, updated_at`

// UserStore persists users in the PostgreSQL users table.
// Identity uniqueness is enforced by the table's unique indexes.
type UserStore struct {
	db *sqlx.DB
}

// NewUserStore returns a store backed by db.
func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) ValidID(id string) bool {
	return ValidID(id)
}

func (s *UserStore) List(ctx context.Context, offset, limit int) ([]user.User, error) {
	users := []user.User{}
	if limit < 1 {
		return users, nil
	}

	q := `SELECT ` + userColumns + ` FROM users ORDER BY seq LIMIT $1 OFFSET $2`
	if err := s.db.SelectContext(ctx, &users, q, limit, max(offset, 0)); err != nil {
		return nil, translate("select users", err)
	}
	return users, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (user.User, error) {
	return s.get(ctx, "select user by id",
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *UserStore) FindByIGN(ctx context.Context, ign string) (user.User, error) {
	return s.get(ctx, "select user by ign",
		`SELECT `+userColumns+` FROM users WHERE lower(ign) = lower($1) ORDER BY seq LIMIT 1`, ign)
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return s.get(ctx, "select user by email",
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) ORDER BY seq LIMIT 1`, email)
}

func (s *UserStore) FindConflict(ctx context.Context, email, discord, ign string) (user.User, error) {
	q := `SELECT ` + userColumns + ` FROM users
		WHERE lower(email) = lower($1)
		   OR lower(ign) = lower($2)
		   OR ($3 <> '' AND discord = $3)
		ORDER BY seq LIMIT 1`
	return s.get(ctx, "select conflicting user", q, email, ign, discord)
}

func (s *UserStore) Create(ctx context.Context, u user.User) (user.User, error) {
	q := `INSERT INTO users (name, surname, name_with_surname, discord, ign, email, password,
			avatar_url, role, permissions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns
	return s.get(ctx, "insert user", q,
		u.Name, u.Surname, u.NameWithSurname, u.Discord, u.IGN, u.Email, u.Password,
		u.AvatarURL, u.Role, u.Permissions)
}

func (s *UserStore) Update(ctx context.Context, u user.User) (user.User, error) {
	q := `UPDATE users SET
			name = $2, surname = $3, name_with_surname = $4, discord = $5, ign = $6,
			email = $7, password = $8, avatar_url = $9, role = $10, permissions = $11,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	return s.get(ctx, "update user", q,
		u.ID, u.Name, u.Surname, u.NameWithSurname, u.Discord, u.IGN,
		u.Email, u.Password, u.AvatarURL, u.Role, u.Permissions)
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translate("delete user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return translate("delete user", err)
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (s *UserStore) get(ctx context.Context, op, q string, args ...any) (user.User, error) {
	var u user.User
	if err := s.db.GetContext(ctx, &u, q, args...); err != nil {
		return user.User{}, translate(op, err)
	}
	return u, nil
}
