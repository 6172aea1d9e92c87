package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateTeamDTO struct {
	Name        string      `json:"name" validate:"required,min=1,max=255"`
	Description null.String `json:"description" validate:"omitempty,max=2000"`
}

type UpdateTeamDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

func (d UpdateTeamDTO) IsEmpty() bool {
	return d.Name == nil && d.Description == nil
}

type AddTeamMemberDTO struct {
	UserID uint64 `json:"user_id" query:"user_id" validate:"required,gt=0"`
}

type TeamDTO struct {
	ID             uint64     `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	MemberCount    int64      `json:"member_count"`
	EquipmentCount int64      `json:"equipment_count"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type TeamMemberDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url"`
	JoinedAt  time.Time `json:"joined_at"`
}

type TeamDetailDTO struct {
	TeamDTO
	Members   []TeamMemberDTO     `json:"members"`
	Equipment []ShortEquipmentDTO `json:"equipment"`
}
