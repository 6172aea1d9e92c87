package types

// TeamMaintenanceRow is one line of the maintenance-by-team report.
type TeamMaintenanceRow struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	TotalRequests int64  `json:"total_requests"`
	NewRequests   int64  `json:"new_requests"`
	InProgress    int64  `json:"in_progress"`
	Completed     int64  `json:"completed"`
	Scrapped      int64  `json:"scrapped"`
}

// EquipmentCategoryRow is one line of the equipment-status report.
type EquipmentCategoryRow struct {
	Category        string `json:"category"`
	Total           int64  `json:"total"`
	Active          int64  `json:"active"`
	Scrapped        int64  `json:"scrapped"`
	WarrantyExpired int64  `json:"warranty_expired"`
}

// TechnicianWorkloadRow is one line of the technician-workload report.
type TechnicianWorkloadRow struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TotalAssigned  int64  `json:"total_assigned"`
	ActiveTasks    int64  `json:"active_tasks"`
	CompletedTasks int64  `json:"completed_tasks"`
}

// UncategorizedLabel replaces an empty equipment category in reports.
const UncategorizedLabel = "Uncategorized"
