// Package gateway is the boundary to the spreadsheet-backed persistence
// API (a Google Apps Script web app). All transport and parse faults are
// absorbed here; nothing past this boundary panics or throws.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned without any network access when no script
// URL is set. Callers fall back to local state and warn the user.
var ErrNotConfigured = errors.New("sheet gateway is not configured")

// ErrUnavailable wraps transport and parse faults
var ErrUnavailable = errors.New("sheet gateway unavailable")

// ErrRejected wraps a well-formed response with success=false
var ErrRejected = errors.New("sheet gateway rejected the request")

// Envelope is the response shape of the Apps Script endpoint
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Err converts a business failure into an error, nil on success
func (e *Envelope) Err() error {
	if e.Success {
		return nil
	}
	if e.Error != "" {
		return fmt.Errorf("%w: %s", ErrRejected, e.Error)
	}
	return ErrRejected
}

// SheetGateway defines the remote persistence boundary
type SheetGateway interface {
	// Configured reports whether a script URL is set
	Configured() bool
	// Call issues one mutation exchange: POST {action, ...payload}
	Call(ctx context.Context, action string, payload map[string]interface{}) (*Envelope, error)
	// FetchAll issues the full read: GET ?action=getAll
	FetchAll(ctx context.Context) (*models.Dataset, error)
	// InFlight returns the number of calls currently awaiting a response
	InFlight() int64
}

// sheetGateway implements SheetGateway
type sheetGateway struct {
	scriptURL string
	client    *http.Client
	logger    *logger.Logger
	inFlight  atomic.Int64
}

// NewSheetGateway creates a gateway for the given script URL. An empty URL
// yields an unconfigured gateway.
func NewSheetGateway(scriptURL string, timeout time.Duration, log *logger.Logger) SheetGateway {
	return &sheetGateway{
		scriptURL: scriptURL,
		client:    &http.Client{Timeout: timeout},
		logger:    log,
	}
}

// NewSheetGatewayWithClient creates a gateway with an injected HTTP client
func NewSheetGatewayWithClient(scriptURL string, client *http.Client, log *logger.Logger) SheetGateway {
	return &sheetGateway{
		scriptURL: scriptURL,
		client:    client,
		logger:    log,
	}
}

// Configured reports whether a script URL is set
func (g *sheetGateway) Configured() bool {
	return g.scriptURL != ""
}

// InFlight returns the number of calls currently awaiting a response
func (g *sheetGateway) InFlight() int64 {
	return g.inFlight.Load()
}

// Call issues a single mutation exchange with the script endpoint
func (g *sheetGateway) Call(ctx context.Context, action string, payload map[string]interface{}) (*Envelope, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}

	requestID := uuid.New().String()
	log := g.logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"action":     action,
	})

	body := map[string]interface{}{"action": action}
	for k, v := range payload {
		body[k] = v
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.WithError(err).Error("Failed to marshal sheet request body")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.scriptURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.WithError(err).Error("Failed to build sheet request")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Sheet request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	envelope, err := decodeEnvelope(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to decode sheet response")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.WithFields(map[string]interface{}{
		"success":    envelope.Success,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Info("Sheet call completed")

	return envelope, nil
}

// FetchAll retrieves the full dataset from the script endpoint
func (g *sheetGateway) FetchAll(ctx context.Context) (*models.Dataset, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}

	requestID := uuid.New().String()
	log := g.logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"action":     "getAll",
	})

	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.scriptURL+"?action=getAll", nil)
	if err != nil {
		log.WithError(err).Error("Failed to build sheet request")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Sheet request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	envelope, err := decodeEnvelope(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to decode sheet response")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := envelope.Err(); err != nil {
		log.WithError(err).Error("Sheet rejected full read")
		return nil, err
	}

	var dataset models.Dataset
	if err := json.Unmarshal(envelope.Data, &dataset); err != nil {
		log.WithError(err).Error("Failed to decode dataset payload")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.WithFields(map[string]interface{}{
		"kas":   len(dataset.Kas),
		"iuran": len(dataset.Iuran),
		"ronda": len(dataset.Ronda),
		"info":  len(dataset.Info),
	}).Info("Full dataset loaded from sheet")

	return &dataset, nil
}

func decodeEnvelope(r io.Reader) (*Envelope, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	return &envelope, nil
}
