package dto

import "time"

type SignupDTO struct {
	Email    string `json:"email" form:"email" validate:"required,custom_email,max=255"`
	Name     string `json:"name" form:"name" validate:"required,min=2,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

type LoginDTO struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"required,user_role"`

	// Username is the OAuth2 password-form name of the email field.
	Username string `json:"username,omitempty" form:"username" validate:"-"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type UserDTO struct {
	ID        uint64     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	AvatarURL *string    `json:"avatar_url"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type ShortUserDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type AuthResponseDTO struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	TokenType    string  `json:"token_type"`
	User         UserDTO `json:"user"`
}
