package constants

// Request statuses as stored in maintenance_requests.status.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusRepaired   = "repaired"
	StatusScrap      = "scrap"
)

// Statuses lists every status in board column order.
var Statuses = []string{
	StatusNew,
	StatusInProgress,
	StatusRepaired,
	StatusScrap,
}

// FinalStatuses are the statuses after which a request can no longer be overdue.
var FinalStatuses = []string{
	StatusRepaired,
	StatusScrap,
}

func IsFinalStatus(code string) bool {
	return contains(FinalStatuses, code)
}

func IsValidStatus(code string) bool {
	return contains(Statuses, code)
}

// Request types.
const (
	RequestTypeCorrective = "corrective"
	RequestTypePreventive = "preventive"
)

var RequestTypes = []string{RequestTypeCorrective, RequestTypePreventive}

func IsValidRequestType(code string) bool {
	return contains(RequestTypes, code)
}

// Request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

func IsValidPriority(code string) bool {
	return contains(Priorities, code)
}

func contains(list []string, code string) bool {
	for _, s := range list {
		if s == code {
			return true
		}
	}
	return false
}
