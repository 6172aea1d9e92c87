package services

import (
	"context"
	"sync"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/service"
	"gearguard/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (b *recordingBus) Publish(_ context.Context, event eventbus.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Name())
	}
	return out
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) (uint64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uint64), args.Error(1)
}

type mockEquipmentRepo struct{ mock.Mock }

func (m *mockEquipmentRepo) List(ctx context.Context, filter types.EquipmentFilter) ([]entities.Equipment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*entities.Equipment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEquipmentRepo) ListByTeam(ctx context.Context, teamID uint64) ([]entities.Equipment, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]entities.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) SerialExists(ctx context.Context, tx pgx.Tx, serial string) (bool, error) {
	args := m.Called(ctx, tx, serial)
	return args.Bool(0), args.Error(1)
}

func (m *mockEquipmentRepo) Create(ctx context.Context, tx pgx.Tx, eq *entities.Equipment) (uint64, error) {
	args := m.Called(ctx, tx, eq)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockEquipmentRepo) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockTeamRepo struct{ mock.Mock }

func (m *mockTeamRepo) List(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.MaintenanceTeam), args.Error(1)
}

func (m *mockTeamRepo) FindByID(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*entities.MaintenanceTeam), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTeamRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamRepo) NameExists(ctx context.Context, tx pgx.Tx, name string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, tx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamRepo) Create(ctx context.Context, tx pgx.Tx, team *entities.MaintenanceTeam) (uint64, error) {
	args := m.Called(ctx, tx, team)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockTeamRepo) Update(ctx context.Context, tx pgx.Tx, id uint64, fields map[string]interface{}) error {
	return m.Called(ctx, tx, id, fields).Error(0)
}

func (m *mockTeamRepo) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTeamRepo) Members(ctx context.Context, teamID uint64) ([]entities.TeamMember, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]entities.TeamMember), args.Error(1)
}

func (m *mockTeamRepo) IsMember(ctx context.Context, teamID, userID uint64) (bool, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamRepo) AddMember(ctx context.Context, teamID, userID uint64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *mockTeamRepo) RemoveMember(ctx context.Context, teamID, userID uint64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

type mockRequestRepo struct{ mock.Mock }

func (m *mockRequestRepo) List(ctx context.Context, filter types.RequestFilter) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*entities.MaintenanceRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRequestRepo) RecentByEquipment(ctx context.Context, equipmentID uint64, limit uint64) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, equipmentID, limit)
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

func (m *mockRequestRepo) ListScheduled(ctx context.Context, rng types.DateRange) ([]entities.CalendarEvent, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).([]entities.CalendarEvent), args.Error(1)
}

func (m *mockRequestRepo) Create(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) (uint64, error) {
	args := m.Called(ctx, tx, req)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockRequestRepo) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockRequestRepo) LockStatus(ctx context.Context, tx pgx.Tx, id uint64) (string, error) {
	args := m.Called(ctx, tx, id)
	return args.String(0), args.Error(1)
}

func (m *mockRequestRepo) SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	return m.Called(ctx, tx, id, status).Error(0)
}

func (m *mockRequestRepo) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, comment *entities.RequestComment) (uint64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockCommentRepo) ListByRequest(ctx context.Context, requestID uint64) ([]entities.RequestComment, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]entities.RequestComment), args.Error(1)
}

type mockStatusLogRepo struct{ mock.Mock }

func (m *mockStatusLogRepo) Create(ctx context.Context, tx pgx.Tx, log *entities.RequestStatusLog) error {
	return m.Called(ctx, tx, log).Error(0)
}

func (m *mockStatusLogRepo) ListByRequest(ctx context.Context, requestID uint64) ([]entities.RequestStatusLog, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]entities.RequestStatusLog), args.Error(1)
}

type mockDashboardRepo struct{ mock.Mock }

func (m *mockDashboardRepo) GetEquipmentStats(ctx context.Context) (*types.EquipmentStats, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*types.EquipmentStats), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDashboardRepo) GetCountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *mockDashboardRepo) GetCountByType(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *mockDashboardRepo) GetOverdueCount(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) GetTeamCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) GetRecentActivity(ctx context.Context, limit uint64) ([]types.DashboardActivityItem, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]types.DashboardActivityItem), args.Error(1)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) MaintenanceByTeam(ctx context.Context) ([]types.TeamMaintenanceRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]types.TeamMaintenanceRow), args.Error(1)
}

func (m *mockReportRepo) EquipmentStatus(ctx context.Context) ([]types.EquipmentCategoryRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]types.EquipmentCategoryRow), args.Error(1)
}

func (m *mockReportRepo) TechnicianWorkload(ctx context.Context) ([]types.TechnicianWorkloadRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]types.TechnicianWorkloadRow), args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Del(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

type mockJWT struct{ mock.Mock }

func (m *mockJWT) GenerateTokens(userID uint64, role string) (string, string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockJWT) ValidateToken(token string) (*service.JwtCustomClaim, error) {
	args := m.Called(token)
	if c := args.Get(0); c != nil {
		return c.(*service.JwtCustomClaim), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJWT) GetAccessTokenTTL() time.Duration  { return 30 * time.Minute }
func (m *mockJWT) GetRefreshTokenTTL() time.Duration { return 24 * time.Hour }
