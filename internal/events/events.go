package events

import (
	"time"

	"github.com/google/uuid"
)

// Event names published on the in-process bus.
const (
	RequestCreated       = "request.created"
	RequestUpdated       = "request.updated"
	RequestStatusChanged = "request.status_changed"
	RequestCommented     = "request.commented"
	RequestDeleted       = "request.deleted"
	EquipmentChanged     = "equipment.changed"
	TeamChanged          = "team.changed"
)

// RequestEventNames are relayed to the broker.
var RequestEventNames = []string{
	RequestCreated,
	RequestUpdated,
	RequestStatusChanged,
	RequestCommented,
	RequestDeleted,
}

// AllEventNames lists every event a mutation can publish.
var AllEventNames = append(append([]string{}, RequestEventNames...), EquipmentChanged, TeamChanged)

// Change actions for equipment and team events.
const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionDeleted       = "deleted"
	ActionMemberAdded   = "member_added"
	ActionMemberRemoved = "member_removed"
)

type Meta struct {
	EventID    string    `json:"event_id"`
	ActorID    uint64    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewMeta(actorID uint64) Meta {
	return Meta{
		EventID:    uuid.NewString(),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
}

type RequestCreatedEvent struct {
	Meta
	RequestID         uint64 `json:"request_id"`
	Subject           string `json:"subject"`
	RequestType       string `json:"request_type"`
	EquipmentID       uint64 `json:"equipment_id"`
	MaintenanceTeamID uint64 `json:"maintenance_team_id"`
}

func (e RequestCreatedEvent) Name() string { return RequestCreated }

type RequestUpdatedEvent struct {
	Meta
	RequestID uint64   `json:"request_id"`
	Fields    []string `json:"fields"`
}

func (e RequestUpdatedEvent) Name() string { return RequestUpdated }

type RequestStatusChangedEvent struct {
	Meta
	RequestID uint64 `json:"request_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

func (e RequestStatusChangedEvent) Name() string { return RequestStatusChanged }

type RequestCommentedEvent struct {
	Meta
	RequestID uint64 `json:"request_id"`
	CommentID uint64 `json:"comment_id"`
}

func (e RequestCommentedEvent) Name() string { return RequestCommented }

type RequestDeletedEvent struct {
	Meta
	RequestID uint64 `json:"request_id"`
}

func (e RequestDeletedEvent) Name() string { return RequestDeleted }

type EquipmentChangedEvent struct {
	Meta
	EquipmentID uint64 `json:"equipment_id"`
	Action      string `json:"action"`
}

func (e EquipmentChangedEvent) Name() string { return EquipmentChanged }

type TeamChangedEvent struct {
	Meta
	TeamID uint64 `json:"team_id"`
	UserID uint64 `json:"user_id,omitempty"`
	Action string `json:"action"`
}

func (e TeamChangedEvent) Name() string { return TeamChanged }
