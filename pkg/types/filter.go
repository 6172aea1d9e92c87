package types

import "time"

// RequestFilter narrows GET /api/requests; nil fields are not applied.
type RequestFilter struct {
	Status      *string `json:"status,omitempty" query:"status"`
	RequestType *string `json:"request_type,omitempty" query:"request_type"`
	EquipmentID *uint64 `json:"equipment_id,omitempty" query:"equipment_id"`
	TeamID      *uint64 `json:"team_id,omitempty" query:"team_id"`
}

// EquipmentFilter narrows GET /api/equipment.
type EquipmentFilter struct {
	Category   *string `json:"category,omitempty" query:"category"`
	Department *string `json:"department,omitempty" query:"department"`
	IsScrapped *bool   `json:"is_scrapped,omitempty" query:"is_scrapped"`
}

// DateRange bounds calendar queries; either end may be open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}
