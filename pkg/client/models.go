package client

import "time"

type User struct {
	ID        uint64  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         User   `json:"user"`
}

// Request is a maintenance request as returned by list endpoints.
type Request struct {
	ID                   uint64      `json:"id"`
	Subject              string      `json:"subject"`
	Description          *string     `json:"description"`
	RequestType          RequestType `json:"request_type"`
	Status               Status      `json:"status"`
	Priority             *Priority   `json:"priority"`
	EquipmentID          uint64      `json:"equipment_id"`
	EquipmentName        string      `json:"equipment_name"`
	SerialNumber         string      `json:"serial_number"`
	MaintenanceTeamID    uint64      `json:"maintenance_team_id"`
	TeamName             string      `json:"team_name"`
	AssignedTechnicianID *uint64     `json:"assigned_technician_id"`
	TechnicianName       *string     `json:"technician_name"`
	ScheduledDate        *time.Time  `json:"scheduled_date"`
	DurationHours        *int64      `json:"duration_hours"`
	StartedAt            *time.Time  `json:"started_at"`
	CompletedAt          *time.Time  `json:"completed_at"`
	CreatedBy            uint64      `json:"created_by"`
	CreatedByName        string      `json:"created_by_name"`
	CreatedAt            *time.Time  `json:"created_at"`
	UpdatedAt            *time.Time  `json:"updated_at"`
}

type RequestDetail struct {
	Request
	Location        *string     `json:"location"`
	TechnicianEmail *string     `json:"technician_email"`
	CreatedByEmail  string      `json:"created_by_email"`
	StatusHistory   []StatusLog `json:"status_history"`
	Comments        []Comment   `json:"comments"`
}

type StatusLog struct {
	ID            uint64    `json:"id"`
	OldStatus     *Status   `json:"old_status"`
	NewStatus     Status    `json:"new_status"`
	ChangedAt     time.Time `json:"changed_at"`
	ChangedByName *string   `json:"changed_by_name"`
}

type Comment struct {
	ID            uint64    `json:"id"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	CommenterName *string   `json:"commenter_name"`
	AvatarURL     *string   `json:"avatar_url"`
}

type StatusChange struct {
	ID        uint64 `json:"id"`
	OldStatus Status `json:"old_status"`
	NewStatus Status `json:"new_status"`
}

type RequestSummary struct {
	ID            uint64      `json:"id"`
	Subject       string      `json:"subject"`
	Status        Status      `json:"status"`
	RequestType   RequestType `json:"request_type"`
	ScheduledDate *time.Time  `json:"scheduled_date"`
	CreatedAt     *time.Time  `json:"created_at"`
}

type Equipment struct {
	ID                  uint64     `json:"id"`
	Name                string     `json:"name"`
	SerialNumber        string     `json:"serial_number"`
	Category            *string    `json:"category"`
	PurchaseDate        *string    `json:"purchase_date"`
	WarrantyExpiry      *string    `json:"warranty_expiry"`
	Location            *string    `json:"location"`
	Department          *string    `json:"department"`
	IsScrapped          bool       `json:"is_scrapped"`
	MaintenanceTeamID   *uint64    `json:"maintenance_team_id"`
	TeamName            *string    `json:"team_name"`
	DefaultTechnicianID *uint64    `json:"default_technician_id"`
	TechnicianName      *string    `json:"technician_name"`
	CreatedAt           *time.Time `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
}

type EquipmentDetail struct {
	Equipment
	TeamDescription *string          `json:"team_description"`
	TechnicianEmail *string          `json:"technician_email"`
	RecentRequests  []RequestSummary `json:"recent_requests"`
}

type Team struct {
	ID             uint64     `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	MemberCount    int64      `json:"member_count"`
	EquipmentCount int64      `json:"equipment_count"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type TeamMember struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url"`
	JoinedAt  time.Time `json:"joined_at"`
}

type TeamDetail struct {
	Team
	Members   []TeamMember     `json:"members"`
	Equipment []ShortEquipment `json:"equipment"`
}

type ShortEquipment struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	Category     *string `json:"category"`
	Location     *string `json:"location"`
}

type CalendarEvent struct {
	ID             uint64      `json:"id"`
	Title          string      `json:"title"`
	Description    *string     `json:"description"`
	Status         Status      `json:"status"`
	RequestType    RequestType `json:"request_type"`
	ScheduledDate  time.Time   `json:"scheduled_date"`
	StartedAt      *time.Time  `json:"started_at"`
	CompletedAt    *time.Time  `json:"completed_at"`
	EquipmentName  string      `json:"equipment_name"`
	TeamName       string      `json:"team_name"`
	TechnicianName *string     `json:"technician_name"`
}

// CreateRequestInput is the payload of POST /api/requests.
type CreateRequestInput struct {
	Subject              string      `json:"subject"`
	Description          *string     `json:"description,omitempty"`
	RequestType          RequestType `json:"request_type,omitempty"`
	Priority             *Priority   `json:"priority,omitempty"`
	EquipmentID          uint64      `json:"equipment_id"`
	MaintenanceTeamID    uint64      `json:"maintenance_team_id"`
	AssignedTechnicianID *uint64     `json:"assigned_technician_id,omitempty"`
	ScheduledDate        *string     `json:"scheduled_date,omitempty"`
	DurationHours        *int64      `json:"duration_hours,omitempty"`
}

// UpdateRequestInput sends only the fields that are set.
type UpdateRequestInput struct {
	Subject              *string   `json:"subject,omitempty"`
	Description          *string   `json:"description,omitempty"`
	Priority             *Priority `json:"priority,omitempty"`
	AssignedTechnicianID *uint64   `json:"assigned_technician_id,omitempty"`
	ScheduledDate        *string   `json:"scheduled_date,omitempty"`
	DurationHours        *int64    `json:"duration_hours,omitempty"`
}

type RequestFilter struct {
	Status      *Status
	RequestType *RequestType
	EquipmentID *uint64
	TeamID      *uint64
}

type EquipmentInput struct {
	Name                *string `json:"name,omitempty"`
	SerialNumber        *string `json:"serial_number,omitempty"`
	Category            *string `json:"category,omitempty"`
	PurchaseDate        *string `json:"purchase_date,omitempty"`
	WarrantyExpiry      *string `json:"warranty_expiry,omitempty"`
	Location            *string `json:"location,omitempty"`
	Department          *string `json:"department,omitempty"`
	IsScrapped          *bool   `json:"is_scrapped,omitempty"`
	MaintenanceTeamID   *uint64 `json:"maintenance_team_id,omitempty"`
	DefaultTechnicianID *uint64 `json:"default_technician_id,omitempty"`
}

type EquipmentFilter struct {
	Category   *string
	Department *string
	IsScrapped *bool
}

type TeamInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
