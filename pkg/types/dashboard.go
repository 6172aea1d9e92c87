package types

import "time"

type DashboardStats struct {
	Equipment      EquipmentStats          `json:"equipment"`
	Requests       RequestStats            `json:"requests"`
	Teams          TeamStats               `json:"teams"`
	RecentActivity []DashboardActivityItem `json:"recent_activity"`
}

type EquipmentStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Scrapped int64 `json:"scrapped"`
}

type RequestStats struct {
	ByStatus StatusCounts `json:"by_status"`
	ByType   TypeCounts   `json:"by_type"`
	Overdue  int64        `json:"overdue"`
	Total    int64        `json:"total"`
}

type StatusCounts struct {
	New        int64 `json:"new"`
	InProgress int64 `json:"in_progress"`
	Repaired   int64 `json:"repaired"`
	Scrap      int64 `json:"scrap"`
}

// Sum is the number of live requests across all statuses.
func (c StatusCounts) Sum() int64 {
	return c.New + c.InProgress + c.Repaired + c.Scrap
}

type TypeCounts struct {
	Corrective int64 `json:"corrective"`
	Preventive int64 `json:"preventive"`
}

type TeamStats struct {
	Total int64 `json:"total"`
}

type DashboardActivityItem struct {
	ID            uint64     `json:"id"`
	Subject       string     `json:"subject"`
	Status        string     `json:"status"`
	EquipmentName string     `json:"equipment_name"`
	CreatedByName string     `json:"created_by_name"`
	CreatedAt     *time.Time `json:"created_at"`
}
