package user

// CreateInput is the contract for registering a new user.
type CreateInput struct {
	Name      string  `json:"name" validate:"required"`
	Surname   string  `json:"surname" validate:"required"`
	Discord   *string `json:"discord,omitempty" validate:"omitempty,min=3"`
	IGN       string  `json:"ign" validate:"required,min=3"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6,maxbytes=72"`
	AvatarURL string  `json:"avatarUrl,omitempty" validate:"omitempty,url"`

	// Role defaults to RoleMember.
	Role Role `json:"role,omitempty" validate:"omitempty,role"`

	// Permissions defaults to DefaultPermissions. When given, every flag is required.
	Permissions *PermissionsInput `json:"permissions,omitempty"`
}

// PermissionsInput is a complete set of flags supplied on creation.
type PermissionsInput struct {
	CanCreatePost    *bool `json:"canCreatePost" validate:"required"`
	CanDeletePost    *bool `json:"canDeletePost" validate:"required"`
	CanEditPost      *bool `json:"canEditPost" validate:"required"`
	CanFixPost       *bool `json:"canFixPost" validate:"required"`
	CanDeleteAllPost *bool `json:"canDeleteAllPost" validate:"required"`
	CanEditAllPost   *bool `json:"canEditAllPost" validate:"required"`

	CanCreateComment    *bool `json:"canCreateComment" validate:"required"`
	CanDeleteComment    *bool `json:"canDeleteComment" validate:"required"`
	CanEditComment      *bool `json:"canEditComment" validate:"required"`
	CanDeleteAllComment *bool `json:"canDeleteAllComment" validate:"required"`
	CanEditAllComment   *bool `json:"canEditAllComment" validate:"required"`

	CanDeleteUser *bool `json:"canDeleteUser" validate:"required"`
	CanEditUser   *bool `json:"canEditUser" validate:"required"`
}

// Permissions converts a validated input into the stored flag set.
func (in PermissionsInput) Permissions() Permissions {
	return PermissionsPatch(in).Apply(Permissions{})
}

// UpdateInput is the partial contract for changing a user. Nil fields are kept.
type UpdateInput struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,min=1"`
	Surname     *string           `json:"surname,omitempty" validate:"omitempty,min=1"`
	Discord     *string           `json:"discord,omitempty" validate:"omitempty,min=3"`
	IGN         *string           `json:"ign,omitempty" validate:"omitempty,min=3"`
	Email       *string           `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string           `json:"password,omitempty" validate:"omitempty,min=6,maxbytes=72"`
	AvatarURL   *string           `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Role        *Role             `json:"role,omitempty" validate:"omitempty,role"`
	Permissions *PermissionsPatch `json:"permissions,omitempty"`
}

// apply copies the plain present fields of in onto u. Derived fields, the
// password and the permissions are resolved by the service.
func (in UpdateInput) apply(u *User) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Surname != nil {
		u.Surname = *in.Surname
	}
	if in.Discord != nil {
		discord := *in.Discord
		u.Discord = &discord
	}
	if in.IGN != nil {
		u.IGN = *in.IGN
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
}
