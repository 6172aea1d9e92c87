package services

import (
	"net/http"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	apperrors "gearguard/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type equipmentFixture struct {
	repo     *mockEquipmentRepo
	teams    *mockTeamRepo
	requests *mockRequestRepo
	bus      *recordingBus
	svc      EquipmentServiceInterface
}

func newEquipmentFixture() *equipmentFixture {
	f := &equipmentFixture{
		repo:     new(mockEquipmentRepo),
		teams:    new(mockTeamRepo),
		requests: new(mockRequestRepo),
		bus:      &recordingBus{},
	}
	f.svc = NewEquipmentService(f.repo, f.teams, f.requests, fakeTxManager{}, f.bus, zap.NewNop())
	return f
}

func TestEquipmentCreate(t *testing.T) {
	f := newEquipmentFixture()
	ctx := ctxWithUser(1, "manager")
	f.teams.On("Exists", ctx, uint64(2)).Return(true, nil)
	f.repo.On("SerialExists", ctx, mock.Anything, "SN-1").Return(false, nil)
	f.repo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(e *entities.Equipment) bool {
		return e.SerialNumber == "SN-1" && e.PurchaseDate != nil &&
			e.PurchaseDate.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) &&
			*e.MaintenanceTeamID == 2
	})).Return(uint64(10), nil)

	id, err := f.svc.Create(ctx, dto.CreateEquipmentDTO{
		Name:              "Lathe",
		SerialNumber:      "SN-1",
		PurchaseDate:      null.StringFrom("2024-05-01"),
		MaintenanceTeamID: null.Uint64From(2),
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(10), id)
	assert.Equal(t, []string{events.EquipmentChanged}, f.bus.names())
}

func TestEquipmentCreate_DuplicateSerial(t *testing.T) {
	f := newEquipmentFixture()
	ctx := ctxWithUser(1, "manager")
	f.repo.On("SerialExists", ctx, mock.Anything, "SN-1").Return(true, nil)

	_, err := f.svc.Create(ctx, dto.CreateEquipmentDTO{Name: "Lathe", SerialNumber: "SN-1"})

	requireHTTPCode(t, err, http.StatusBadRequest)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, f.bus.names())
}

func TestEquipmentCreate_UnknownTeam(t *testing.T) {
	f := newEquipmentFixture()
	ctx := ctxWithUser(1, "manager")
	f.teams.On("Exists", ctx, uint64(9)).Return(false, nil)

	_, err := f.svc.Create(ctx, dto.CreateEquipmentDTO{Name: "Lathe", SerialNumber: "SN-1", MaintenanceTeamID: null.Uint64From(9)})
	requireHTTPCode(t, err, http.StatusNotFound)
}

func TestEquipmentGet_IncludesRecentRequests(t *testing.T) {
	f := newEquipmentFixture()
	ctx := ctxWithUser(1, "manager")
	f.repo.On("FindByID", ctx, uint64(3)).Return(&entities.Equipment{ID: 3, Name: "Press"}, nil)
	f.requests.On("RecentByEquipment", ctx, uint64(3), uint64(5)).
		Return([]entities.MaintenanceRequest{{ID: 8, Subject: "noise"}}, nil)

	detail, err := f.svc.Get(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "Press", detail.Name)
	require.Len(t, detail.RecentRequests, 1)
	assert.Equal(t, uint64(8), detail.RecentRequests[0].ID)
}

func TestEquipmentUpdateAndDelete(t *testing.T) {
	f := newEquipmentFixture()
	ctx := ctxWithUser(1, "admin")

	requireHTTPCode(t, f.svc.Update(ctx, 3, dto.UpdateEquipmentDTO{}), http.StatusBadRequest)

	scrapped := true
	f.repo.On("Update", ctx, uint64(3), map[string]interface{}{"is_scrapped": true}).Return(nil)
	require.NoError(t, f.svc.Update(ctx, 3, dto.UpdateEquipmentDTO{IsScrapped: &scrapped}))

	f.repo.On("Delete", ctx, uint64(4)).Return(apperrors.ErrNotFound)
	requireHTTPCode(t, f.svc.Delete(ctx, 4), http.StatusNotFound)

	assert.Equal(t, []string{events.EquipmentChanged}, f.bus.names())
}
