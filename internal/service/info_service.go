package service

import (
	"bytes"
	"context"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/format"
	"emurai-be-svc/pkg/logger"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Info user-facing notices
const (
	infoCreatedMessage = "Pengumuman berhasil ditambahkan!"
	infoUpdatedMessage = "Pengumuman berhasil diupdate!"
	infoDeletedMessage = "Pengumuman berhasil dihapus!"
)

// mdRenderer is a goldmark instance configured for safe HTML output: raw
// HTML in announcement bodies stays escaped.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// newInfoCard renders one announcement for any view
func newInfoCard(item models.InfoItem, isAdmin bool) response.InfoCard {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(item.Isi), &buf); err != nil {
		// fall back to the raw body; goldmark only fails on writer errors
		buf.Reset()
		buf.WriteString(item.Isi)
	}

	return response.InfoCard{
		InfoItem:       item,
		TanggalDisplay: format.DateDisplay(item.Tanggal),
		IsiHTML:        buf.String(),
		Actions:        response.AdminActions(isAdmin),
	}
}

// InfoService interface defines announcement rendering and commands
type InfoService interface {
	List(isAdmin bool) *response.InfoListResponse
	Get(id int64) (*models.InfoItem, error)
	Save(ctx context.Context, item models.InfoItem) (*response.MutationResult, error)
	Delete(ctx context.Context, id int64) (*response.MutationResult, error)
}

// infoService implements InfoService interface
type infoService struct {
	store   *store.Store
	gateway gateway.SheetGateway
	sync    SyncService
	logger  *logger.Logger
}

// NewInfoService creates a new info service
func NewInfoService(st *store.Store, gw gateway.SheetGateway, syncSvc SyncService, log *logger.Logger) InfoService {
	return &infoService{
		store:   st,
		gateway: gw,
		sync:    syncSvc,
		logger:  log,
	}
}

// List renders the announcements page in collection order
func (s *infoService) List(isAdmin bool) *response.InfoListResponse {
	ds := s.store.Snapshot()

	resp := &response.InfoListResponse{
		Items: make([]response.InfoCard, 0, len(ds.Info)),
		Total: len(ds.Info),
	}
	for _, item := range ds.Info {
		resp.Items = append(resp.Items, newInfoCard(item, isAdmin))
	}
	if len(resp.Items) == 0 {
		resp.Empty = emptyInfoMessage
	}

	return resp
}

// Get looks up one announcement for form population
func (s *infoService) Get(id int64) (*models.InfoItem, error) {
	ds := s.store.Snapshot()
	for _, i := range ds.Info {
		if i.ID == id {
			return &i, nil
		}
	}
	return nil, store.ErrNotFound
}

// Save validates and persists an announcement. ID zero creates, non-zero
// updates.
func (s *infoService) Save(ctx context.Context, item models.InfoItem) (*response.MutationResult, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	message := infoCreatedMessage
	if item.ID != 0 {
		message = infoUpdatedMessage
	}

	if s.gateway.Configured() {
		action := "addInfo"
		payload := map[string]interface{}{
			"tanggal":  item.Tanggal,
			"judul":    item.Judul,
			"kategori": item.Kategori,
			"isi":      item.Isi,
		}
		if item.ID != 0 {
			action = "updateInfo"
			payload["id"] = item.ID
		}

		if err := s.mutateRemote(ctx, action, payload); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: message, ID: item.ID, Source: response.SourceSheet}, nil
	}

	if item.ID != 0 {
		if err := s.store.UpdateInfo(item); err != nil {
			return nil, err
		}
	} else {
		item = s.store.InsertInfo(item)
	}

	s.logger.WithFields(map[string]interface{}{
		"id":       item.ID,
		"kategori": item.Kategori,
	}).Info("Announcement saved locally")

	return &response.MutationResult{Message: message, ID: item.ID, Source: response.SourceLocal}, nil
}

// Delete removes an announcement by id
func (s *infoService) Delete(ctx context.Context, id int64) (*response.MutationResult, error) {
	if s.gateway.Configured() {
		if err := s.mutateRemote(ctx, "deleteInfo", map[string]interface{}{"id": id}); err != nil {
			return nil, err
		}
		return &response.MutationResult{Message: infoDeletedMessage, Source: response.SourceSheet}, nil
	}

	if err := s.store.DeleteInfo(id); err != nil {
		return nil, err
	}

	s.logger.WithField("id", id).Info("Announcement deleted locally")

	return &response.MutationResult{Message: infoDeletedMessage, Source: response.SourceLocal}, nil
}

func (s *infoService) mutateRemote(ctx context.Context, action string, payload map[string]interface{}) error {
	envelope, err := s.gateway.Call(ctx, action, payload)
	if err != nil {
		return err
	}
	if err := envelope.Err(); err != nil {
		return err
	}

	if _, err := s.sync.LoadAll(ctx); err != nil {
		s.logger.WithError(err).Warn("Reload after info mutation failed, keeping previous view")
	}
	return nil
}
