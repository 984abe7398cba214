package service

import (
	"context"
	"sort"
	"strings"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/format"
	"emurai-be-svc/pkg/logger"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Iuran user-facing notices
const (
	iuranCreatedMessage = "Data iuran berhasil ditambahkan!"
	iuranUpdatedMessage = "Data iuran berhasil diupdate!"
	iuranDeletedMessage = "Data iuran berhasil dihapus!"
	iuranEmptyMessage   = "Tidak ada data iuran"
)

// IuranService interface defines dues rendering and commands
type IuranService interface {
	List(bulan, query string, isAdmin bool) *response.IuranListResponse
	Get(id int64) (*models.IuranRecord, error)
	Save(ctx context.Context, record models.IuranRecord) (*response.MutationResult, error)
	Delete(ctx context.Context, id int64) (*response.MutationResult, error)
}

// iuranService implements IuranService interface
type iuranService struct {
	store   *store.Store
	gateway gateway.SheetGateway
	sync    SyncService
	logger  *logger.Logger
}

// NewIuranService creates a new iuran service
func NewIuranService(st *store.Store, gw gateway.SheetGateway, syncSvc SyncService, log *logger.Logger) IuranService {
	return &iuranService{
		store:   st,
		gateway: gw,
		sync:    syncSvc,
		logger:  log,
	}
}

// List renders the dues page. Filters are AND-combined: bulan matches the
// billing month exactly, query matches house code or resident name
// case-insensitively as a substring. Records sort by house code ascending
// with Indonesian collation.
func (s *iuranService) List(bulan, query string, isAdmin bool) *response.IuranListResponse {
	ds := s.store.Snapshot()
	query = strings.ToLower(query)

	filtered := make([]models.IuranRecord, 0, len(ds.Iuran))
	months := map[string]struct{}{}
	for _, r := range ds.Iuran {
		months[r.Bulan] = struct{}{}
		if bulan != "" && r.Bulan != bulan {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Rumah), query) &&
			!strings.Contains(strings.ToLower(r.Nama), query) {
			continue
		}
		filtered = append(filtered, r)
	}

	collator := collate.New(language.Indonesian)
	sort.SliceStable(filtered, func(i, j int) bool {
		return collator.CompareString(filtered[i].Rumah, filtered[j].Rumah) < 0
	})

	resp := &response.IuranListResponse{
		Items:  make([]response.IuranItem, 0, len(filtered)),
		Total:  len(filtered),
		Months: sortedMonthsDesc(months),
	}
	for _, r := range filtered {
		resp.Items = append(resp.Items, response.IuranItem{
			IuranRecord:     r,
			JumlahFormatted: format.Currency(r.Jumlah),
			Actions:         response.AdminActions(isAdmin),
		})
	}
	if len(resp.Items) == 0 {
		resp.Empty = iuranEmptyMessage
	}

	return resp
}

// Get looks up one record for form population
func (s *iuranService) Get(id int64) (*models.IuranRecord, error) {
	ds := s.store.Snapshot()
	for _, r := range ds.Iuran {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

// Save validates and persists a record. ID zero creates, non-zero updates.
func (s *iuranService) Save(ctx context.Context, record models.IuranRecord) (*response.MutationResult, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	message := iuranCreatedMessage
	if record.ID != 0 {
		message = iuranUpdatedMessage
	}

	if s.gateway.Configured() {
		action := "addIuran"
		payload := map[string]interface{}{
			"rumah":  record.Rumah,
			"nama":   record.Nama,
			"bulan":  record.Bulan,
			"jumlah": record.Jumlah,
			"status": record.Status,
		}
		if record.ID != 0 {
			action = "updateIuran"
			payload["id"] = record.ID
		}

		if err := s.mutateRemote(ctx, action, payload); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: message, ID: record.ID, Source: response.SourceSheet}, nil
	}

	if record.ID != 0 {
		if err := s.store.UpdateIuran(record); err != nil {
			return nil, err
		}
	} else {
		record = s.store.InsertIuran(record)
	}

	s.logger.WithFields(map[string]interface{}{
		"id":     record.ID,
		"rumah":  record.Rumah,
		"bulan":  record.Bulan,
		"status": record.Status,
	}).Info("Iuran record saved locally")

	return &response.MutationResult{Message: message, ID: record.ID, Source: response.SourceLocal}, nil
}

// Delete removes a record by id
func (s *iuranService) Delete(ctx context.Context, id int64) (*response.MutationResult, error) {
	if s.gateway.Configured() {
		if err := s.mutateRemote(ctx, "deleteIuran", map[string]interface{}{"id": id}); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: iuranDeletedMessage, Source: response.SourceSheet}, nil
	}

	if err := s.store.DeleteIuran(id); err != nil {
		return nil, err
	}

	s.logger.WithField("id", id).Info("Iuran record deleted locally")

	return &response.MutationResult{Message: iuranDeletedMessage, Source: response.SourceLocal}, nil
}

func (s *iuranService) mutateRemote(ctx context.Context, action string, payload map[string]interface{}) error {
	envelope, err := s.gateway.Call(ctx, action, payload)
	if err != nil {
		return err
	}
	if err := envelope.Err(); err != nil {
		return err
	}

	if _, err := s.sync.LoadAll(ctx); err != nil {
		s.logger.WithError(err).Warn("Reload after iuran mutation failed, keeping previous view")
	}
	return nil
}
