/*
Package user contains the account data model and the account service.

It defines the User record with its role tier and permission flags, the
create/update input contracts, the derived fields (full name, default avatar)
and the Service that applies the business rules on top of a Store.
*/
package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/soaresgus/community-backend/internal/pkg/valid"
)

// User is a community member account as persisted by a Store.
type User struct {
	// ID is assigned by the Store on creation and never changes.
	ID string `json:"id" db:"id"`

	Name    string `json:"name" db:"name"`
	Surname string `json:"surname" db:"surname"`

	// NameWithSurname is always Name + " " + Surname.
	NameWithSurname string `json:"nameWithSurname" db:"name_with_surname"`

	// Discord is optional; when present it is unique across users.
	Discord *string `json:"discord" db:"discord"`

	// IGN is the in-game name, unique across users (case-insensitive).
	IGN string `json:"ign" db:"ign"`

	// Email is unique across users (case-insensitive).
	Email string `json:"email" db:"email"`

	// Password holds the bcrypt hash, never the plaintext. Existing clients
	// read it, so it is still rendered.
	// TODO: drop it from responses once the web client stops reading it.
	Password string `json:"password" db:"password"`

	AvatarURL   string      `json:"avatarUrl" db:"avatar_url"`
	Role        Role        `json:"role" db:"role"`
	Permissions Permissions `json:"permissions" db:"permissions"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName builds the derived nameWithSurname field.
func FullName(name, surname string) string {
	return name + " " + surname
}

// Role is a membership tier. Tiers are ordered from RoleMember to RoleMaster.
type Role string

const (
	RoleMember        Role = "member"
	RoleVIPHero       Role = "vip-hero"
	RoleVIPLegend     Role = "vip-legend"
	RoleVIPSupreme    Role = "vip-supreme"
	RolePartner       Role = "partner"
	RoleHelper        Role = "helper"
	RoleModerator     Role = "moderator"
	RoleModeratorPlus Role = "moderator+"
	RoleManager       Role = "manager"
	RoleManagerPlus   Role = "manager+"
	RoleMaster        Role = "master"
)

// Roles lists every tier in ascending order.
var Roles = []Role{
	RoleMember,
	RoleVIPHero,
	RoleVIPLegend,
	RoleVIPSupreme,
	RolePartner,
	RoleHelper,
	RoleModerator,
	RoleModeratorPlus,
	RoleManager,
	RoleManagerPlus,
	RoleMaster,
}

// Valid reports whether r is one of the known tiers.
func (r Role) Valid() bool {
	return r.Rank() >= 0
}

// Rank returns the position of r in Roles, or -1 for an unknown role.
func (r Role) Rank() int {
	for i, known := range Roles {
		if r == known {
			return i
		}
	}
	return -1
}

func init() {
	names := make([]string, len(Roles))
	for i, r := range Roles {
		names[i] = string(r)
	}
	valid.RegisterEnum("role", names...)
}

// Permissions is the closed set of content-moderation capability flags.
type Permissions struct {
	CanCreatePost    bool `json:"canCreatePost"`
	CanDeletePost    bool `json:"canDeletePost"`
	CanEditPost      bool `json:"canEditPost"`
	CanFixPost       bool `json:"canFixPost"`
	CanDeleteAllPost bool `json:"canDeleteAllPost"`
	CanEditAllPost   bool `json:"canEditAllPost"`

	CanCreateComment    bool `json:"canCreateComment"`
	CanDeleteComment    bool `json:"canDeleteComment"`
	CanEditComment      bool `json:"canEditComment"`
	CanDeleteAllComment bool `json:"canDeleteAllComment"`
	CanEditAllComment   bool `json:"canEditAllComment"`

	CanDeleteUser bool `json:"canDeleteUser"`
	CanEditUser   bool `json:"canEditUser"`
}

// DefaultPermissions is the baseline granted on creation: control over the
// member's own posts and comments, nothing elevated.
func DefaultPermissions() Permissions {
	return Permissions{
		CanCreatePost:    true,
		CanDeletePost:    true,
		CanEditPost:      true,
		CanCreateComment: true,
		CanDeleteComment: true,
		CanEditComment:   true,
	}
}

// Value stores the flags as a JSON document.
func (p Permissions) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads the flags from a JSON document. A NULL or undecodable value
// leaves every flag false, so a later merge starts from an empty set.
func (p *Permissions) Scan(src any) error {
	*p = Permissions{}

	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("permissions: unsupported column type %T", src)
	}

	var decoded Permissions
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil
	}
	*p = decoded
	return nil
}

// PermissionsPatch carries a partial set of flags. Nil flags are left untouched.
type PermissionsPatch struct {
	CanCreatePost    *bool `json:"canCreatePost,omitempty"`
	CanDeletePost    *bool `json:"canDeletePost,omitempty"`
	CanEditPost      *bool `json:"canEditPost,omitempty"`
	CanFixPost       *bool `json:"canFixPost,omitempty"`
	CanDeleteAllPost *bool `json:"canDeleteAllPost,omitempty"`
	CanEditAllPost   *bool `json:"canEditAllPost,omitempty"`

	CanCreateComment    *bool `json:"canCreateComment,omitempty"`
	CanDeleteComment    *bool `json:"canDeleteComment,omitempty"`
	CanEditComment      *bool `json:"canEditComment,omitempty"`
	CanDeleteAllComment *bool `json:"canDeleteAllComment,omitempty"`
	CanEditAllComment   *bool `json:"canEditAllComment,omitempty"`

	CanDeleteUser *bool `json:"canDeleteUser,omitempty"`
	CanEditUser   *bool `json:"canEditUser,omitempty"`
}

// Apply overlays the present flags of p on base and returns the result.
func (p PermissionsPatch) Apply(base Permissions) Permissions {
	out := base

	overlay(&out.CanCreatePost, p.CanCreatePost)
	overlay(&out.CanDeletePost, p.CanDeletePost)
	overlay(&out.CanEditPost, p.CanEditPost)
	overlay(&out.CanFixPost, p.CanFixPost)
	overlay(&out.CanDeleteAllPost, p.CanDeleteAllPost)
	overlay(&out.CanEditAllPost, p.CanEditAllPost)

	overlay(&out.CanCreateComment, p.CanCreateComment)
	overlay(&out.CanDeleteComment, p.CanDeleteComment)
	overlay(&out.CanEditComment, p.CanEditComment)
	overlay(&out.CanDeleteAllComment, p.CanDeleteAllComment)
	overlay(&out.CanEditAllComment, p.CanEditAllComment)

	overlay(&out.CanDeleteUser, p.CanDeleteUser)
	overlay(&out.CanEditUser, p.CanEditUser)

	return out
}

func overlay(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// AvatarTemplate derives the default avatar URL from an in-game name.
type AvatarTemplate struct {
	BaseURL string
	Size    int
}

// DefaultAvatars points at the public Minecraft head renderer.
var DefaultAvatars = AvatarTemplate{BaseURL: "https://mc-heads.net/avatar", Size: 400}

// URL returns <base>/<ign>/<size>.
func (t AvatarTemplate) URL(ign string) string {
	return fmt.Sprintf("%s/%s/%d", strings.TrimRight(t.BaseURL, "/"), url.PathEscape(ign), t.Size)
}
