package entities

import (
	"gearguard/pkg/types"
)

type User struct {
	ID           uint64  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	AvatarURL    *string `json:"avatar_url"`

	types.BaseEntity
	types.SoftDelete
}
