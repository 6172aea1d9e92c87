package entities

import (
	"time"

	"gearguard/pkg/types"
)

type MaintenanceTeam struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`

	types.BaseEntity
	types.SoftDelete

	// Aggregates filled by list queries, not columns.
	MemberCount    int64 `db:"-"`
	EquipmentCount int64 `db:"-"`
}

// TeamMember is a user row joined with its membership.
type TeamMember struct {
	UserID    uint64
	Name      string
	Email     string
	Role      string
	AvatarURL *string
	JoinedAt  time.Time
}
