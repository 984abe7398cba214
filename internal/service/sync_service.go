package service

import (
	"context"
	"sync"
	"time"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/logger"
)

// SyncService interface defines the full-dataset load operation. It is the
// single source of data freshness: invoked at startup, after every
// successful remote mutation, and by the refresh scheduler, never by the
// read-only page endpoints.
type SyncService interface {
	LoadAll(ctx context.Context) (*response.SyncResult, error)
}

// syncService implements SyncService interface
type syncService struct {
	gateway gateway.SheetGateway
	store   *store.Store
	logger  *logger.Logger
	now     func() time.Time

	mu     sync.Mutex
	loaded bool
}

// NewSyncService creates a new sync service
func NewSyncService(gw gateway.SheetGateway, st *store.Store, log *logger.Logger) SyncService {
	return &syncService{
		gateway: gw,
		store:   st,
		logger:  log,
		now:     time.Now,
	}
}

// LoadAll refreshes the in-memory aggregate. Sheet mode replaces the
// aggregate wholesale on success; a failed fetch falls back to the sample
// dataset only when nothing was ever loaded, otherwise the last good state
// is kept and the error is returned. Unconfigured mode always serves the
// sample dataset with a setup warning.
func (s *syncService) LoadAll(ctx context.Context) (*response.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gateway.Configured() {
		if !s.loaded {
			s.store.Replace(store.SampleDataset(s.now()))
			s.loaded = true
			s.logger.Info("Sheet gateway not configured, sample dataset loaded")
		}
		return s.result(response.SourceSample, "Silakan setup Google Sheets terlebih dahulu!"), nil
	}

	dataset, err := s.gateway.FetchAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load dataset from sheet")

		if !s.loaded {
			s.store.Replace(store.SampleDataset(s.now()))
			s.loaded = true
			s.logger.Warn("Initial sheet load failed, sample dataset loaded")
			return s.result(response.SourceSample, "Gagal memuat data dari Google Sheets, menampilkan data contoh."), nil
		}

		// keep the last good state
		return nil, err
	}

	s.store.Replace(*dataset)
	s.loaded = true

	return s.result(response.SourceSheet, ""), nil
}

func (s *syncService) result(source, notice string) *response.SyncResult {
	ds := s.store.Snapshot()
	return &response.SyncResult{
		Source: source,
		Notice: notice,
		Counts: response.SyncCounts{
			Kas:   len(ds.Kas),
			Iuran: len(ds.Iuran),
			Ronda: len(ds.Ronda),
			Info:  len(ds.Info),
		},
	}
}
