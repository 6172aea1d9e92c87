package services

import (
	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

func userToDTO(u *entities.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func equipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:                  e.ID,
		Name:                e.Name,
		SerialNumber:        e.SerialNumber,
		Category:            e.Category,
		PurchaseDate:        formatDate(e.PurchaseDate),
		WarrantyExpiry:      formatDate(e.WarrantyExpiry),
		Location:            e.Location,
		Department:          e.Department,
		IsScrapped:          e.IsScrapped,
		MaintenanceTeamID:   e.MaintenanceTeamID,
		TeamName:            e.TeamName,
		DefaultTechnicianID: e.DefaultTechnicianID,
		TechnicianName:      e.TechnicianName,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func shortEquipmentToDTO(e entities.Equipment) dto.ShortEquipmentDTO {
	return dto.ShortEquipmentDTO{
		ID:           e.ID,
		Name:         e.Name,
		SerialNumber: e.SerialNumber,
		Category:     e.Category,
		Location:     e.Location,
	}
}

func teamToDTO(t entities.MaintenanceTeam) dto.TeamDTO {
	return dto.TeamDTO{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		MemberCount:    t.MemberCount,
		EquipmentCount: t.EquipmentCount,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func memberToDTO(m entities.TeamMember) dto.TeamMemberDTO {
	return dto.TeamMemberDTO{
		ID:        m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		AvatarURL: m.AvatarURL,
		JoinedAt:  m.JoinedAt,
	}
}

func requestToDTO(r entities.MaintenanceRequest) dto.RequestDTO {
	return dto.RequestDTO{
		ID:                   r.ID,
		Subject:              r.Subject,
		Description:          r.Description,
		RequestType:          r.RequestType,
		Status:               r.Status,
		Priority:             r.Priority,
		EquipmentID:          r.EquipmentID,
		EquipmentName:        r.EquipmentName,
		SerialNumber:         r.SerialNumber,
		MaintenanceTeamID:    r.MaintenanceTeamID,
		TeamName:             r.TeamName,
		AssignedTechnicianID: r.AssignedTechnicianID,
		TechnicianName:       r.TechnicianName,
		ScheduledDate:        r.ScheduledDate,
		DurationHours:        r.DurationHours,
		StartedAt:            r.StartedAt,
		CompletedAt:          r.CompletedAt,
		CreatedBy:            r.CreatedBy,
		CreatedByName:        r.CreatedByName,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func requestSummaryToDTO(r entities.MaintenanceRequest) dto.RequestSummaryDTO {
	return dto.RequestSummaryDTO{
		ID:            r.ID,
		Subject:       r.Subject,
		Status:        r.Status,
		RequestType:   r.RequestType,
		ScheduledDate: r.ScheduledDate,
		CreatedAt:     r.CreatedAt,
	}
}

func commentToDTO(c entities.RequestComment) dto.CommentDTO {
	return dto.CommentDTO{
		ID:            c.ID,
		Comment:       c.Comment,
		CreatedAt:     c.CreatedAt,
		CommenterName: c.CommenterName,
		AvatarURL:     c.AvatarURL,
	}
}

func statusLogToDTO(l entities.RequestStatusLog) dto.StatusLogDTO {
	return dto.StatusLogDTO{
		ID:            l.ID,
		OldStatus:     l.OldStatus,
		NewStatus:     l.NewStatus,
		ChangedAt:     l.ChangedAt,
		ChangedByName: l.ChangedByName,
	}
}

func calendarEventToDTO(e entities.CalendarEvent) dto.CalendarEventDTO {
	return dto.CalendarEventDTO{
		ID:             e.ID,
		Title:          e.Subject,
		Description:    e.Description,
		Status:         e.Status,
		RequestType:    e.RequestType,
		ScheduledDate:  e.ScheduledDate,
		StartedAt:      e.StartedAt,
		CompletedAt:    e.CompletedAt,
		EquipmentName:  e.EquipmentName,
		TeamName:       e.TeamName,
		TechnicianName: e.TechnicianName,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
