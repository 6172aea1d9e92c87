package controllers

import (
	"context"
	"time"

	"gearguard/internal/dto"
	"gearguard/pkg/service"
	"gearguard/pkg/types"

	"github.com/stretchr/testify/mock"
)

type mockRequestService struct{ mock.Mock }

func (m *mockRequestService) List(ctx context.Context, filter types.RequestFilter) ([]dto.RequestDTO, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]dto.RequestDTO)
	return list, args.Error(1)
}

func (m *mockRequestService) Get(ctx context.Context, id uint64) (*dto.RequestDetailDTO, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dto.RequestDetailDTO)
	return d, args.Error(1)
}

func (m *mockRequestService) Create(ctx context.Context, payload dto.CreateRequestDTO) (uint64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockRequestService) Update(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) error {
	return m.Called(ctx, id, payload).Error(0)
}

func (m *mockRequestService) UpdateStatus(ctx context.Context, id uint64, status string) (*dto.StatusChangeDTO, error) {
	args := m.Called(ctx, id, status)
	d, _ := args.Get(0).(*dto.StatusChangeDTO)
	return d, args.Error(1)
}

func (m *mockRequestService) AddComment(ctx context.Context, id uint64, comment string) (uint64, error) {
	args := m.Called(ctx, id, comment)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockRequestService) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockTeamService struct{ mock.Mock }

func (m *mockTeamService) List(ctx context.Context) ([]dto.TeamDTO, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]dto.TeamDTO)
	return list, args.Error(1)
}

func (m *mockTeamService) Get(ctx context.Context, id uint64) (*dto.TeamDetailDTO, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dto.TeamDetailDTO)
	return d, args.Error(1)
}

func (m *mockTeamService) Create(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockTeamService) Update(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error {
	return m.Called(ctx, id, payload).Error(0)
}

func (m *mockTeamService) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTeamService) AddMember(ctx context.Context, teamID, userID uint64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *mockTeamService) RemoveMember(ctx context.Context, teamID, userID uint64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

type mockEquipmentService struct{ mock.Mock }

func (m *mockEquipmentService) List(ctx context.Context, filter types.EquipmentFilter) ([]dto.EquipmentDTO, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]dto.EquipmentDTO)
	return list, args.Error(1)
}

func (m *mockEquipmentService) Get(ctx context.Context, id uint64) (*dto.EquipmentDetailDTO, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dto.EquipmentDetailDTO)
	return d, args.Error(1)
}

func (m *mockEquipmentService) Create(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockEquipmentService) Update(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	return m.Called(ctx, id, payload).Error(0)
}

func (m *mockEquipmentService) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockDashboardService struct{ mock.Mock }

func (m *mockDashboardService) GetStats(ctx context.Context) (*types.DashboardStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*types.DashboardStats)
	return s, args.Error(1)
}

type mockCalendarService struct{ mock.Mock }

func (m *mockCalendarService) Events(ctx context.Context, rng types.DateRange) ([]dto.CalendarEventDTO, error) {
	args := m.Called(ctx, rng)
	list, _ := args.Get(0).([]dto.CalendarEventDTO)
	return list, args.Error(1)
}

type mockReportService struct{ mock.Mock }

func (m *mockReportService) MaintenanceByTeam(ctx context.Context) ([]types.TeamMaintenanceRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]types.TeamMaintenanceRow)
	return rows, args.Error(1)
}

func (m *mockReportService) EquipmentStatus(ctx context.Context) ([]types.EquipmentCategoryRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]types.EquipmentCategoryRow)
	return rows, args.Error(1)
}

func (m *mockReportService) TechnicianWorkload(ctx context.Context) ([]types.TechnicianWorkloadRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]types.TechnicianWorkloadRow)
	return rows, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.UserDTO, error) {
	args := m.Called(ctx, payload)
	u, _ := args.Get(0).(*dto.UserDTO)
	return u, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	args := m.Called(ctx, payload)
	r, _ := args.Get(0).(*dto.AuthResponseDTO)
	return r, args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context) (*dto.UserDTO, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(*dto.UserDTO)
	return u, args.Error(1)
}

type mockJWT struct{ mock.Mock }

func (m *mockJWT) GenerateTokens(userID uint64, role string) (string, string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockJWT) ValidateToken(token string) (*service.JwtCustomClaim, error) {
	args := m.Called(token)
	c, _ := args.Get(0).(*service.JwtCustomClaim)
	return c, args.Error(1)
}

func (m *mockJWT) GetAccessTokenTTL() time.Duration  { return 30 * time.Minute }
func (m *mockJWT) GetRefreshTokenTTL() time.Duration { return 24 * time.Hour }
