package entities

import (
	"time"

	"gearguard/pkg/types"
)

type Equipment struct {
	ID                  uint64     `json:"id"`
	Name                string     `json:"name"`
	SerialNumber        string     `json:"serial_number"`
	Category            *string    `json:"category"`
	PurchaseDate        *time.Time `json:"purchase_date"`
	WarrantyExpiry      *time.Time `json:"warranty_expiry"`
	Location            *string    `json:"location"`
	Department          *string    `json:"department"`
	IsScrapped          bool       `json:"is_scrapped"`
	MaintenanceTeamID   *uint64    `json:"maintenance_team_id"`
	DefaultTechnicianID *uint64    `json:"default_technician_id"`

	types.BaseEntity
	types.SoftDelete

	// Joined data, not columns.
	TeamName        *string `db:"-"`
	TeamDescription *string `db:"-"`
	TechnicianName  *string `db:"-"`
	TechnicianEmail *string `db:"-"`
}
