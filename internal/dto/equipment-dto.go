package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name                string      `json:"name" validate:"required,min=1,max=255"`
	SerialNumber        string      `json:"serial_number" validate:"required,min=1,max=255"`
	Category            null.String `json:"category" validate:"omitempty,max=255"`
	PurchaseDate        null.String `json:"purchase_date"`
	WarrantyExpiry      null.String `json:"warranty_expiry"`
	Location            null.String `json:"location" validate:"omitempty,max=255"`
	Department          null.String `json:"department" validate:"omitempty,max=255"`
	MaintenanceTeamID   null.Uint64 `json:"maintenance_team_id" validate:"omitempty,gt=0"`
	DefaultTechnicianID null.Uint64 `json:"default_technician_id" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Category            *string `json:"category,omitempty" validate:"omitempty,max=255"`
	PurchaseDate        *string `json:"purchase_date,omitempty"`
	WarrantyExpiry      *string `json:"warranty_expiry,omitempty"`
	Location            *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Department          *string `json:"department,omitempty" validate:"omitempty,max=255"`
	MaintenanceTeamID   *uint64 `json:"maintenance_team_id,omitempty" validate:"omitempty,gt=0"`
	DefaultTechnicianID *uint64 `json:"default_technician_id,omitempty" validate:"omitempty,gt=0"`
	IsScrapped          *bool   `json:"is_scrapped,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (d UpdateEquipmentDTO) IsEmpty() bool {
	return d.Name == nil && d.Category == nil && d.PurchaseDate == nil &&
		d.WarrantyExpiry == nil && d.Location == nil && d.Department == nil &&
		d.MaintenanceTeamID == nil && d.DefaultTechnicianID == nil && d.IsScrapped == nil
}

type EquipmentDTO struct {
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

type EquipmentDetailDTO struct {
	EquipmentDTO
	TeamDescription *string             `json:"team_description"`
	TechnicianEmail *string             `json:"technician_email"`
	RecentRequests  []RequestSummaryDTO `json:"recent_requests"`
}

type ShortEquipmentDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	Category     *string `json:"category"`
	Location     *string `json:"location"`
}
