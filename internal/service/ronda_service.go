package service

import (
	"context"
	"time"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/format"
	"emurai-be-svc/pkg/logger"
)

// Ronda user-facing notices
const (
	rondaCreatedMessage = "Jadwal ronda berhasil ditambahkan!"
	rondaUpdatedMessage = "Jadwal ronda berhasil diupdate!"
	rondaDeletedMessage = "Jadwal ronda berhasil dihapus!"
)

// RondaService interface defines watch-schedule rendering and commands
type RondaService interface {
	Schedule(weekOffset int, isAdmin bool) *response.RondaScheduleResponse
	Get(id int64) (*models.RondaShift, error)
	Save(ctx context.Context, shift models.RondaShift) (*response.MutationResult, error)
	Delete(ctx context.Context, id int64) (*response.MutationResult, error)
}

// rondaService implements RondaService interface
type rondaService struct {
	store   *store.Store
	gateway gateway.SheetGateway
	sync    SyncService
	logger  *logger.Logger
	now     func() time.Time
}

// NewRondaService creates a new ronda service
func NewRondaService(st *store.Store, gw gateway.SheetGateway, syncSvc SyncService, log *logger.Logger) RondaService {
	return &rondaService{
		store:   st,
		gateway: gw,
		sync:    syncSvc,
		logger:  log,
		now:     time.Now,
	}
}

// Schedule renders a seven-day window starting at today plus weekOffset
// weeks. Every day is present as a cell; days without shifts carry an
// empty shift list.
func (s *rondaService) Schedule(weekOffset int, isAdmin bool) *response.RondaScheduleResponse {
	ds := s.store.Snapshot()
	now := s.now()
	today := format.Date(now)
	start := now.AddDate(0, 0, weekOffset*7)

	resp := &response.RondaScheduleResponse{
		WeekOffset: weekOffset,
		StartDate:  format.Date(start),
		EndDate:    format.Date(start.AddDate(0, 0, 6)),
		Days:       make([]response.RondaDay, 0, 7),
	}

	for d := 0; d < 7; d++ {
		day := start.AddDate(0, 0, d)
		dayStr := format.Date(day)

		cell := response.RondaDay{
			Tanggal:        dayStr,
			DayName:        format.DayName(day),
			TanggalDisplay: format.DateDisplay(dayStr),
			IsToday:        dayStr == today,
			Shifts:         []response.RondaShiftItem{},
		}
		for _, shift := range ds.Ronda {
			if shift.Tanggal == dayStr {
				cell.Shifts = append(cell.Shifts, response.RondaShiftItem{
					RondaShift: shift,
					Actions:    response.AdminActions(isAdmin),
				})
			}
		}

		resp.Days = append(resp.Days, cell)
	}

	return resp
}

// Get looks up one shift for form population
func (s *rondaService) Get(id int64) (*models.RondaShift, error) {
	ds := s.store.Snapshot()
	for _, r := range ds.Ronda {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

// Save validates and persists a shift. ID zero creates, non-zero updates.
func (s *rondaService) Save(ctx context.Context, shift models.RondaShift) (*response.MutationResult, error) {
	if err := shift.Validate(); err != nil {
		return nil, err
	}

	message := rondaCreatedMessage
	if shift.ID != 0 {
		message = rondaUpdatedMessage
	}

	if s.gateway.Configured() {
		action := "addRonda"
		payload := map[string]interface{}{
			"tanggal":  shift.Tanggal,
			"petugas1": shift.Petugas1,
			"petugas2": shift.Petugas2,
			"jam":      shift.Jam,
		}
		if shift.ID != 0 {
			action = "updateRonda"
			payload["id"] = shift.ID
		}

		if err := s.mutateRemote(ctx, action, payload); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: message, ID: shift.ID, Source: response.SourceSheet}, nil
	}

	if shift.ID != 0 {
		if err := s.store.UpdateRonda(shift); err != nil {
			return nil, err
		}
	} else {
		shift = s.store.InsertRonda(shift)
	}

	s.logger.WithFields(map[string]interface{}{
		"id":      shift.ID,
		"tanggal": shift.Tanggal,
	}).Info("Ronda shift saved locally")

	return &response.MutationResult{Message: message, ID: shift.ID, Source: response.SourceLocal}, nil
}

// Delete removes a shift by id
func (s *rondaService) Delete(ctx context.Context, id int64) (*response.MutationResult, error) {
	if s.gateway.Configured() {
		if err := s.mutateRemote(ctx, "deleteRonda", map[string]interface{}{"id": id}); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: rondaDeletedMessage, Source: response.SourceSheet}, nil
	}

	if err := s.store.DeleteRonda(id); err != nil {
		return nil, err
	}

	s.logger.WithField("id", id).Info("Ronda shift deleted locally")

	return &response.MutationResult{Message: rondaDeletedMessage, Source: response.SourceLocal}, nil
}

func (s *rondaService) mutateRemote(ctx context.Context, action string, payload map[string]interface{}) error {
	envelope, err := s.gateway.Call(ctx, action, payload)
	if err != nil {
		return err
	}
	if err := envelope.Err(); err != nil {
		return err
	}

	if _, err := s.sync.LoadAll(ctx); err != nil {
		s.logger.WithError(err).Warn("Reload after ronda mutation failed, keeping previous view")
	}
	return nil
}
