package querycache

import (
	"fmt"
	"net/url"
)

// RequestList is the key of a request list for the given filter query.
func RequestList(filter url.Values) Key {
	scope := "list"
	if len(filter) > 0 {
		scope += "?" + filter.Encode()
	}
	return Key{Entity: EntityRequests, Scope: scope}
}

func RequestDetail(id uint64) Key {
	return Key{Entity: EntityRequests, Scope: fmt.Sprintf("detail/%d", id)}
}

func DashboardStats() Key {
	return Key{Entity: EntityDashboard, Scope: "stats"}
}

func EquipmentList(filter url.Values) Key {
	scope := "list"
	if len(filter) > 0 {
		scope += "?" + filter.Encode()
	}
	return Key{Entity: EntityEquipment, Scope: scope}
}

func EquipmentDetail(id uint64) Key {
	return Key{Entity: EntityEquipment, Scope: fmt.Sprintf("detail/%d", id)}
}

func TeamList() Key {
	return Key{Entity: EntityTeams, Scope: "list"}
}

func TeamDetail(id uint64) Key {
	return Key{Entity: EntityTeams, Scope: fmt.Sprintf("detail/%d", id)}
}

// Calendar is keyed by the requested date range.
func Calendar(start, end string) Key {
	return Key{Entity: EntityCalendar, Scope: start + ".." + end}
}

func Report(name string) Key {
	return Key{Entity: EntityReports, Scope: name}
}
