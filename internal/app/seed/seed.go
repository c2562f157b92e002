/*
Package seed fills an empty deployment with fake community members.

Every generated account goes through user.Service.Create, so seeded rows obey
the same validation, hashing and uniqueness rules as real registrations.
*/
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/soaresgus/community-backend/internal/app/user"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
	"github.com/soaresgus/community-backend/internal/pkg/randx"
)

// Password is the plaintext password shared by all seeded accounts.
const Password = "123456"

// maxAttempts bounds retries when a generated identity is already taken.
const maxAttempts = 5

// Creator is the part of user.Service the seeder needs.
type Creator interface {
	Create(ctx context.Context, in user.CreateInput) (user.User, error)
}

// Run creates n fake users and returns how many were stored.
func Run(ctx context.Context, users Creator, n int) (int, error) {
	created := 0

	for created < n {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		u, err := createOne(ctx, users)
		if err != nil {
			return created, fmt.Errorf("seed user %d: %w", created+1, err)
		}

		created++
		logx.Logger().Debug().Str("id", u.ID).Str("ign", u.IGN).Str("role", string(u.Role)).Msg("Seeded user")
	}

	return created, nil
}

func createOne(ctx context.Context, users Creator) (user.User, error) {
	var lastErr error

	for range maxAttempts {
		in, err := Input()
		if err != nil {
			return user.User{}, err
		}

		u, err := users.Create(ctx, in)
		if errors.Is(err, user.ErrConflict) {
			lastErr = err
			continue
		}
		return u, err
	}

	return user.User{}, lastErr
}

// Input generates one random registration. Names come from gofakeit and
// ign and discord end in a Base62 suffix. The permission set grants post
// authoring and comment creation only.
func Input() (user.CreateInput, error) {
	name, surname := gofakeit.FirstName(), gofakeit.LastName()

	ign, err := randx.Handle(alnum(gofakeit.Username()))
	if err != nil {
		return user.CreateInput{}, err
	}

	discord, err := randx.Handle(alnum(surname))
	if err != nil {
		return user.CreateInput{}, err
	}

	role, err := randx.Pick(user.Roles)
	if err != nil {
		return user.CreateInput{}, err
	}

	yes, no := true, false
	return user.CreateInput{
		Name:     name,
		Surname:  surname,
		Discord:  &discord,
		IGN:      ign,
		Email:    ign + "@" + strings.ToLower(gofakeit.DomainName()),
		Password: Password,
		Role:     role,
		Permissions: &user.PermissionsInput{
			CanCreatePost:       &yes,
			CanDeletePost:       &yes,
			CanEditPost:         &yes,
			CanFixPost:          &no,
			CanDeleteAllPost:    &no,
			CanEditAllPost:      &no,
			CanCreateComment:    &yes,
			CanDeleteComment:    &no,
			CanEditComment:      &no,
			CanDeleteAllComment: &no,
			CanEditAllComment:   &no,
			CanDeleteUser:       &no,
			CanEditUser:         &no,
		},
	}, nil
}

// alnum drops everything but letters and digits, e.g. the apostrophe in "O'Kon".
func alnum(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, s)
}
