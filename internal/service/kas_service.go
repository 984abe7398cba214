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
)

// Kas user-facing notices
const (
	kasCreatedMessage = "Transaksi berhasil ditambahkan!"
	kasUpdatedMessage = "Transaksi berhasil diupdate!"
	kasDeletedMessage = "Transaksi berhasil dihapus!"
	kasEmptyMessage   = "Tidak ada transaksi"
)

// KasService interface defines ledger rendering and commands
type KasService interface {
	List(bulan, tipe string, isAdmin bool) *response.KasListResponse
	Get(id int64) (*models.KasEntry, error)
	Save(ctx context.Context, entry models.KasEntry) (*response.MutationResult, error)
	Delete(ctx context.Context, id int64) (*response.MutationResult, error)
}

// kasService implements KasService interface
type kasService struct {
	store   *store.Store
	gateway gateway.SheetGateway
	sync    SyncService
	logger  *logger.Logger
}

// NewKasService creates a new kas service
func NewKasService(st *store.Store, gw gateway.SheetGateway, syncSvc SyncService, log *logger.Logger) KasService {
	return &kasService{
		store:   st,
		gateway: gw,
		sync:    syncSvc,
		logger:  log,
	}
}

// List renders the ledger page. Both filters are optional and AND-combined:
// bulan matches the YYYY-MM date prefix, tipe matches exactly. The result
// is sorted by date descending; ties keep their collection order.
func (s *kasService) List(bulan, tipe string, isAdmin bool) *response.KasListResponse {
	ds := s.store.Snapshot()

	filtered := make([]models.KasEntry, 0, len(ds.Kas))
	months := map[string]struct{}{}
	for _, k := range ds.Kas {
		if len(k.Tanggal) >= 7 {
			months[k.Tanggal[:7]] = struct{}{}
		}
		if bulan != "" && !strings.HasPrefix(k.Tanggal, bulan) {
			continue
		}
		if tipe != "" && k.Tipe != tipe {
			continue
		}
		filtered = append(filtered, k)
	}

	// wire dates are YYYY-MM-DD, so string order is date order
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Tanggal > filtered[j].Tanggal
	})

	resp := &response.KasListResponse{
		Items:  make([]response.KasItem, 0, len(filtered)),
		Total:  len(filtered),
		Months: sortedMonthsDesc(months),
	}
	for _, k := range filtered {
		sign := "+"
		if k.Tipe == models.TipeKeluar {
			sign = "-"
		}
		resp.Items = append(resp.Items, response.KasItem{
			KasEntry:        k,
			TanggalDisplay:  format.DateDisplay(k.Tanggal),
			JumlahFormatted: sign + " " + format.Currency(k.Jumlah),
			Actions:         response.AdminActions(isAdmin),
		})
	}
	if len(resp.Items) == 0 {
		resp.Empty = kasEmptyMessage
	}

	return resp
}

// Get looks up one entry for form population
func (s *kasService) Get(id int64) (*models.KasEntry, error) {
	ds := s.store.Snapshot()
	for _, k := range ds.Kas {
		if k.ID == id {
			return &k, nil
		}
	}
	return nil, store.ErrNotFound
}

// Save validates and persists an entry. ID zero creates, non-zero updates.
// Sheet mode mutates remotely and reloads the full dataset only on a
// reported success; local mode mutates the store directly.
func (s *kasService) Save(ctx context.Context, entry models.KasEntry) (*response.MutationResult, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	message := kasCreatedMessage
	if entry.ID != 0 {
		message = kasUpdatedMessage
	}

	if s.gateway.Configured() {
		action := "addKas"
		payload := map[string]interface{}{
			"tanggal":    entry.Tanggal,
			"tipe":       entry.Tipe,
			"keterangan": entry.Keterangan,
			"jumlah":     entry.Jumlah,
		}
		if entry.ID != 0 {
			action = "updateKas"
			payload["id"] = entry.ID
		}

		if err := s.mutateRemote(ctx, action, payload); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: message, ID: entry.ID, Source: response.SourceSheet}, nil
	}

	if entry.ID != 0 {
		if err := s.store.UpdateKas(entry); err != nil {
			return nil, err
		}
	} else {
		entry = s.store.InsertKas(entry)
	}

	s.logger.WithFields(map[string]interface{}{
		"id":     entry.ID,
		"tipe":   entry.Tipe,
		"jumlah": entry.Jumlah,
	}).Info("Kas entry saved locally")

	return &response.MutationResult{Message: message, ID: entry.ID, Source: response.SourceLocal}, nil
}

// Delete removes an entry by id
func (s *kasService) Delete(ctx context.Context, id int64) (*response.MutationResult, error) {
	if s.gateway.Configured() {
		if err := s.mutateRemote(ctx, "deleteKas", map[string]interface{}{"id": id}); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: kasDeletedMessage, Source: response.SourceSheet}, nil
	}

	if err := s.store.DeleteKas(id); err != nil {
		return nil, err
	}

	s.logger.WithField("id", id).Info("Kas entry deleted locally")

	return &response.MutationResult{Message: kasDeletedMessage, Source: response.SourceLocal}, nil
}

func (s *kasService) mutateRemote(ctx context.Context, action string, payload map[string]interface{}) error {
	envelope, err := s.gateway.Call(ctx, action, payload)
	if err != nil {
		return err
	}
	if err := envelope.Err(); err != nil {
		return err
	}

	// the mutation is already applied remotely; a failed reload keeps the
	// previous view but must not fail the command
	if _, err := s.sync.LoadAll(ctx); err != nil {
		s.logger.WithError(err).Warn("Reload after kas mutation failed, keeping previous view")
	}
	return nil
}

// sortedMonthsDesc turns the distinct month set into filter options,
// newest first
func sortedMonthsDesc(months map[string]struct{}) []string {
	out := make([]string, 0, len(months))
	for m := range months {
		out = append(out, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}
