package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("panic", "text")
}

func TestUnconfiguredGateway(t *testing.T) {
	g := gateway.NewSheetGateway("", time.Second, testLogger())

	assert.False(t, g.Configured())

	_, err := g.Call(context.Background(), "addKas", nil)
	assert.ErrorIs(t, err, gateway.ErrNotConfigured)

	_, err = g.FetchAll(context.Background())
	assert.ErrorIs(t, err, gateway.ErrNotConfigured)
}

func TestCallSuccess(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	g := gateway.NewSheetGateway(server.URL, time.Second, testLogger())

	envelope, err := g.Call(context.Background(), "addKas", map[string]interface{}{
		"tanggal": "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.True(t, envelope.Success)
	assert.NoError(t, envelope.Err())
	assert.Zero(t, g.InFlight())
}

func TestCallWithInjectedClient(t *testing.T) {
	// a TLS endpoint needs the server's own client for its certificate
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	g := gateway.NewSheetGatewayWithClient(server.URL, server.Client(), testLogger())

	envelope, err := g.Call(context.Background(), "addInfo", nil)
	require.NoError(t, err)
	assert.True(t, envelope.Success)
	assert.Zero(t, g.InFlight())
}

func TestCallBusinessFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"sheet row locked"}`))
	}))
	defer server.Close()

	g := gateway.NewSheetGateway(server.URL, time.Second, testLogger())

	envelope, err := g.Call(context.Background(), "deleteKas", map[string]interface{}{"id": 1})
	require.NoError(t, err)
	assert.False(t, envelope.Success)

	err = envelope.Err()
	assert.ErrorIs(t, err, gateway.ErrRejected)
	assert.Contains(t, err.Error(), "sheet row locked")
	assert.Zero(t, g.InFlight())
}

func TestCallTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	g := gateway.NewSheetGateway(server.URL, time.Second, testLogger())

	_, err := g.Call(context.Background(), "addKas", nil)
	assert.ErrorIs(t, err, gateway.ErrUnavailable)
	assert.Zero(t, g.InFlight())
}

func TestCallParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	g := gateway.NewSheetGateway(server.URL, time.Second, testLogger())

	_, err := g.Call(context.Background(), "addKas", nil)
	assert.ErrorIs(t, err, gateway.ErrUnavailable)
	assert.Zero(t, g.InFlight())
}

func TestFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getAll", r.URL.Query().Get("action"))
		w.Write([]byte(`{
			"success": true,
			"data": {
				"kas": [{"id":1,"tanggal":"2024-01-15","tipe":"masuk","keterangan":"Iuran","jumlah":1500000}],
				"iuran": [],
				"ronda": [],
				"info": []
			}
		}`))
	}))
	defer server.Close()

	g := gateway.NewSheetGateway(server.URL, time.Second, testLogger())

	dataset, err := g.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, dataset.Kas, 1)
	assert.Equal(t, int64(1500000), dataset.Kas[0].Jumlah)
	assert.Zero(t, g.InFlight())
}

func TestFetchAllRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"quota exceeded"}`))
	}))
	defer server.Close()

	g := gateway.NewSheetGateway(server.URL, time.Second, testLogger())

	_, err := g.FetchAll(context.Background())
	assert.ErrorIs(t, err, gateway.ErrRejected)
	assert.Zero(t, g.InFlight())
}
