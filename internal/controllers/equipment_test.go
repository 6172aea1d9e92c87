package controllers

import (
	"net/http"
	"testing"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEquipmentController_ListFilters(t *testing.T) {
	svc := new(mockEquipmentService)
	ctrl := NewEquipmentController(svc, zap.NewNop())

	svc.On("List", mock.Anything, mock.MatchedBy(func(f types.EquipmentFilter) bool {
		return f.Category != nil && *f.Category == "Pumps" &&
			f.Department == nil &&
			f.IsScrapped != nil && !*f.IsScrapped
	})).Return([]dto.EquipmentDTO{}, nil)

	c, rec := newCtx(newEcho(), http.MethodGet, "/api/equipment?category=Pumps&is_scrapped=false", "")
	require.NoError(t, ctrl.List(c))
	requireStatus(t, rec, http.StatusOK)
	svc.AssertExpectations(t)

	c, rec = newCtx(newEcho(), http.MethodGet, "/api/equipment?is_scrapped=maybe", "")
	require.NoError(t, ctrl.List(c))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestEquipmentController_CreateDuplicateSerial(t *testing.T) {
	svc := new(mockEquipmentService)
	ctrl := NewEquipmentController(svc, zap.NewNop())

	svc.On("Create", mock.Anything, mock.MatchedBy(func(p dto.CreateEquipmentDTO) bool {
		return p.SerialNumber == "SN-1" && p.Category.Valid && p.Category.String == "Pumps"
	})).Return(uint64(0), apperrors.NewConflictError("serial number already exists"))

	c, rec := newCtx(newEcho(), http.MethodPost, "/api/equipment",
		`{"name":"Pump","serial_number":"SN-1","category":"Pumps"}`)
	require.NoError(t, ctrl.Create(c))
	requireStatus(t, rec, http.StatusBadRequest)
	require.Equal(t, "serial number already exists", decode(t, rec).Message)
}

func TestEquipmentController_GetNotFound(t *testing.T) {
	svc := new(mockEquipmentService)
	ctrl := NewEquipmentController(svc, zap.NewNop())
	svc.On("Get", mock.Anything, uint64(12)).Return(nil, apperrors.NewNotFoundError("equipment not found"))

	c, rec := newCtx(newEcho(), http.MethodGet, "/api/equipment/12", "", "id", "12")
	require.NoError(t, ctrl.Get(c))
	requireStatus(t, rec, http.StatusNotFound)
}
