// Package board projects maintenance requests into board columns and a flat
// list, and mediates status changes made from either layout.
package board

import (
	"time"

	"gearguard/pkg/client"
)

// Item is a request annotated for display.
type Item struct {
	client.Request
	Overdue bool
}

// Column is one status bucket of the board.
type Column struct {
	Status client.Status
	Items  []Item
}

type Projection struct {
	now func() time.Time
}

// NewProjection uses now for every overdue check; nil means time.Now.
func NewProjection(now func() time.Time) *Projection {
	if now == nil {
		now = time.Now
	}
	return &Projection{now: now}
}

// IsOverdue is true iff scheduled is set, strictly before now, and the status
// is not terminal.
func IsOverdue(scheduled *time.Time, status client.Status, now time.Time) bool {
	if scheduled == nil || status.Terminal() {
		return false
	}
	return scheduled.Before(now)
}

// IsOverdue reads the clock on every call.
func (p *Projection) IsOverdue(scheduled *time.Time, status client.Status) bool {
	return IsOverdue(scheduled, status, p.now())
}

// Partition returns the four columns in board order. Fetch order is kept
// inside a column. A request with an unrecognised status lands in "new".
func (p *Projection) Partition(requests []client.Request) []Column {
	now := p.now()
	statuses := client.Statuses()

	columns := make([]Column, len(statuses))
	index := make(map[client.Status]int, len(statuses))
	for i, s := range statuses {
		columns[i] = Column{Status: s, Items: []Item{}}
		index[s] = i
	}

	for _, r := range requests {
		i, ok := index[r.Status]
		if !ok {
			i = index[client.StatusNew]
		}
		columns[i].Items = append(columns[i].Items, Item{Request: r, Overdue: IsOverdue(r.ScheduledDate, r.Status, now)})
	}
	return columns
}

// Flat returns the requests in fetch order.
func (p *Projection) Flat(requests []client.Request) []Item {
	now := p.now()
	items := make([]Item, 0, len(requests))
	for _, r := range requests {
		items = append(items, Item{Request: r, Overdue: IsOverdue(r.ScheduledDate, r.Status, now)})
	}
	return items
}
