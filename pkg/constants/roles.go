package constants

//============== USER ROLES ==============

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
	RoleEmployee   = "employee"
)

var Roles = []string{RoleAdmin, RoleManager, RoleTechnician, RoleEmployee}

func IsValidRole(code string) bool {
	return contains(Roles, code)
}

// Role sets allowed to call mutating endpoints.
var (
	EquipmentEditors  = []string{RoleAdmin, RoleManager}
	EquipmentRemovers = []string{RoleAdmin}
	TeamEditors       = []string{RoleAdmin, RoleManager}
	TeamRemovers      = []string{RoleAdmin}
	RequestCreators   = []string{RoleAdmin, RoleManager, RoleEmployee}
	RequestEditors    = []string{RoleAdmin, RoleManager, RoleTechnician}
	RequestRemovers   = []string{RoleAdmin}
)

//============== CACHE KEYS ==============

const (
	// Format: dashboard:stats
	CacheKeyDashboardStats = "dashboard:stats"

	// Format: report:<name>
	CacheKeyReport = "report:%s"

	// Changes on every aggregate invalidation.
	CacheKeyAggregateEpoch = "aggregates:epoch"
)

// Report names, used in routes and cache keys.
const (
	ReportMaintenanceByTeam  = "maintenance-by-team"
	ReportEquipmentStatus    = "equipment-status"
	ReportTechnicianWorkload = "technician-workload"
)

var Reports = []string{ReportMaintenanceByTeam, ReportEquipmentStatus, ReportTechnicianWorkload}

//============== COOKIES ==============

const (
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"
)
