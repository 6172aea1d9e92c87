package board

import (
	"context"
	"sync"
	"time"

	"gearguard/pkg/client"
	"gearguard/pkg/types"

	"github.com/stretchr/testify/mock"
)

// memoryAPI is an in-memory request store that counts calls.
type memoryAPI struct {
	mu        sync.Mutex
	nextID    uint64
	requests  map[uint64]*client.Request
	order     []uint64
	calls     map[string]int
	statusErr error
}

func newMemoryAPI(seed ...client.Request) *memoryAPI {
	m := &memoryAPI{requests: map[uint64]*client.Request{}, calls: map[string]int{}}
	for i := range seed {
		r := seed[i]
		m.requests[r.ID] = &r
		m.order = append(m.order, r.ID)
		if r.ID > m.nextID {
			m.nextID = r.ID
		}
	}
	return m
}

func (m *memoryAPI) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *memoryAPI) ListRequests(_ context.Context, filter client.RequestFilter) ([]client.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["list"]++
	out := []client.Request{}
	for _, id := range m.order {
		r := m.requests[id]
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *memoryAPI) GetRequest(_ context.Context, id uint64) (*client.RequestDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["get"]++
	r, ok := m.requests[id]
	if !ok {
		return nil, &client.NotFoundError{Message: "request not found"}
	}
	return &client.RequestDetail{Request: *r}, nil
}

func (m *memoryAPI) CreateRequest(_ context.Context, in client.CreateRequestInput) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["create"]++
	m.nextID++
	r := &client.Request{
		ID:                m.nextID,
		Subject:           in.Subject,
		RequestType:       in.RequestType,
		Status:            client.StatusNew,
		EquipmentID:       in.EquipmentID,
		MaintenanceTeamID: in.MaintenanceTeamID,
	}
	m.requests[r.ID] = r
	m.order = append(m.order, r.ID)
	return r.ID, nil
}

func (m *memoryAPI) UpdateRequest(_ context.Context, id uint64, in client.UpdateRequestInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["update"]++
	r, ok := m.requests[id]
	if !ok {
		return &client.NotFoundError{Message: "request not found"}
	}
	if in.Subject != nil {
		r.Subject = *in.Subject
	}
	return nil
}

func (m *memoryAPI) UpdateStatus(_ context.Context, id uint64, status client.Status) (*client.StatusChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["status"]++
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	r, ok := m.requests[id]
	if !ok {
		return nil, &client.NotFoundError{Message: "request not found"}
	}
	change := &client.StatusChange{ID: id, OldStatus: r.Status, NewStatus: status}
	r.Status = status
	return change, nil
}

func (m *memoryAPI) AddComment(_ context.Context, id uint64, _ string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["comment"]++
	if _, ok := m.requests[id]; !ok {
		return 0, &client.NotFoundError{Message: "request not found"}
	}
	return 1, nil
}

func (m *memoryAPI) DeleteRequest(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["delete"]++
	if _, ok := m.requests[id]; !ok {
		return &client.NotFoundError{Message: "request not found"}
	}
	delete(m.requests, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryAPI) DashboardStats(_ context.Context) (*types.DashboardStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["dashboard"]++
	stats := &types.DashboardStats{}
	for _, r := range m.requests {
		switch r.Status {
		case client.StatusNew:
			stats.Requests.ByStatus.New++
		case client.StatusInProgress:
			stats.Requests.ByStatus.InProgress++
		case client.StatusRepaired:
			stats.Requests.ByStatus.Repaired++
		case client.StatusScrap:
			stats.Requests.ByStatus.Scrap++
		}
	}
	stats.Requests.Total = stats.Requests.ByStatus.Sum()
	return stats, nil
}

type mockConfirmer struct{ mock.Mock }

func (m *mockConfirmer) ConfirmScrap(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUpdater struct{ mock.Mock }

func (m *mockUpdater) UpdateStatus(ctx context.Context, id uint64, status client.Status) (*client.StatusChange, error) {
	args := m.Called(ctx, id, status)
	change, _ := args.Get(0).(*client.StatusChange)
	return change, args.Error(1)
}

// recordingNotifier keeps every notification.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptrTime(t time.Time) *time.Time { return &t }
