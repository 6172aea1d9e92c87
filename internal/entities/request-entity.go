package entities

import (
	"time"

	"gearguard/pkg/types"
)

type MaintenanceRequest struct {
	ID                   uint64     `json:"id"`
	Subject              string     `json:"subject"`
	Description          *string    `json:"description"`
	RequestType          string     `json:"request_type"`
	Status               string     `json:"status"`
	Priority             *string    `json:"priority"`
	EquipmentID          uint64     `json:"equipment_id"`
	MaintenanceTeamID    uint64     `json:"maintenance_team_id"`
	AssignedTechnicianID *uint64    `json:"assigned_technician_id"`
	ScheduledDate        *time.Time `json:"scheduled_date"`
	DurationHours        *int64     `json:"duration_hours"`
	StartedAt            *time.Time `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at"`
	CreatedBy            uint64     `json:"created_by"`

	types.BaseEntity
	types.SoftDelete

	// Joined data, not columns.
	EquipmentName   string  `db:"-"`
	SerialNumber    string  `db:"-"`
	Location        *string `db:"-"`
	TeamName        string  `db:"-"`
	TechnicianName  *string `db:"-"`
	TechnicianEmail *string `db:"-"`
	CreatedByName   string  `db:"-"`
	CreatedByEmail  string  `db:"-"`
}

type RequestComment struct {
	ID            uint64    `json:"id"`
	RequestID     uint64    `json:"request_id"`
	Comment       string    `json:"comment"`
	CommentedBy   uint64    `json:"commented_by"`
	CreatedAt     time.Time `json:"created_at"`
	CommenterName *string   `db:"-"`
	AvatarURL     *string   `db:"-"`
}

type RequestStatusLog struct {
	ID            uint64    `json:"id"`
	RequestID     uint64    `json:"request_id"`
	OldStatus     *string   `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	ChangedBy     *uint64   `json:"changed_by"`
	ChangedAt     time.Time `json:"changed_at"`
	ChangedByName *string   `db:"-"`
}

// CalendarEvent is a scheduled request as shown on the calendar.
type CalendarEvent struct {
	ID             uint64
	Subject        string
	Description    *string
	Status         string
	RequestType    string
	ScheduledDate  time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	EquipmentName  string
	TeamName       string
	TechnicianName *string
}
