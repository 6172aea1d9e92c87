package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateRequestDTO struct {
	Subject              string      `json:"subject" validate:"required,min=1,max=255"`
	Description          null.String `json:"description" validate:"omitempty,max=5000"`
	RequestType          string      `json:"request_type" validate:"omitempty,request_type"`
	Priority             null.String `json:"priority" validate:"omitempty,request_priority"`
	EquipmentID          uint64      `json:"equipment_id" validate:"required,gt=0"`
	MaintenanceTeamID    uint64      `json:"maintenance_team_id" validate:"required,gt=0"`
	AssignedTechnicianID null.Uint64 `json:"assigned_technician_id" validate:"omitempty,gt=0"`
	ScheduledDate        null.String `json:"scheduled_date"`
	DurationHours        null.Int64  `json:"duration_hours" validate:"omitempty,gt=0"`

	// Work-center requests are not supported; the field exists only so that
	// such payloads are rejected instead of silently dropped.
	WorkCenterID null.Uint64 `json:"work_center_id"`
}

type UpdateRequestDTO struct {
	Subject              *string `json:"subject,omitempty" validate:"omitempty,min=1,max=255"`
	Description          *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Priority             *string `json:"priority,omitempty" validate:"omitempty,request_priority"`
	AssignedTechnicianID *uint64 `json:"assigned_technician_id,omitempty" validate:"omitempty,gt=0"`
	ScheduledDate        *string `json:"scheduled_date,omitempty"`
	DurationHours        *int64  `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`

	// Immutable after creation; present only to reject attempts to change it.
	RequestType *string `json:"request_type,omitempty"`
}

func (d UpdateRequestDTO) IsEmpty() bool {
	return d.Subject == nil && d.Description == nil && d.Priority == nil &&
		d.AssignedTechnicianID == nil && d.ScheduledDate == nil && d.DurationHours == nil
}

type UpdateStatusDTO struct {
	Status string `json:"status" query:"status" validate:"required,request_status"`
}

type AddCommentDTO struct {
	Comment string `json:"comment" query:"comment" validate:"required,min=1,max=5000"`
}

type RequestDTO struct {
	ID                   uint64     `json:"id"`
	Subject              string     `json:"subject"`
	Description          *string    `json:"description"`
	RequestType          string     `json:"request_type"`
	Status               string     `json:"status"`
	Priority             *string    `json:"priority"`
	EquipmentID          uint64     `json:"equipment_id"`
	EquipmentName        string     `json:"equipment_name"`
	SerialNumber         string     `json:"serial_number"`
	MaintenanceTeamID    uint64     `json:"maintenance_team_id"`
	TeamName             string     `json:"team_name"`
	AssignedTechnicianID *uint64    `json:"assigned_technician_id"`
	TechnicianName       *string    `json:"technician_name"`
	ScheduledDate        *time.Time `json:"scheduled_date"`
	DurationHours        *int64     `json:"duration_hours"`
	StartedAt            *time.Time `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at"`
	CreatedBy            uint64     `json:"created_by"`
	CreatedByName        string     `json:"created_by_name"`
	CreatedAt            *time.Time `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}

type RequestDetailDTO struct {
	RequestDTO
	Location        *string        `json:"location"`
	TechnicianEmail *string        `json:"technician_email"`
	CreatedByEmail  string         `json:"created_by_email"`
	StatusHistory   []StatusLogDTO `json:"status_history"`
	Comments        []CommentDTO   `json:"comments"`
}

type RequestSummaryDTO struct {
	ID            uint64     `json:"id"`
	Subject       string     `json:"subject"`
	Status        string     `json:"status"`
	RequestType   string     `json:"request_type"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	CreatedAt     *time.Time `json:"created_at"`
}

type StatusChangeDTO struct {
	ID        uint64 `json:"id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

type StatusLogDTO struct {
	ID            uint64    `json:"id"`
	OldStatus     *string   `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	ChangedAt     time.Time `json:"changed_at"`
	ChangedByName *string   `json:"changed_by_name"`
}

type CommentDTO struct {
	ID            uint64    `json:"id"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	CommenterName *string   `json:"commenter_name"`
	AvatarURL     *string   `json:"avatar_url"`
}

type CalendarEventDTO struct {
	ID             uint64     `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Status         string     `json:"status"`
	RequestType    string     `json:"request_type"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	EquipmentName  string     `json:"equipment_name"`
	TeamName       string     `json:"team_name"`
	TechnicianName *string    `json:"technician_name"`
}
