package service

import (
	"context"
	"testing"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSync(gw gateway.SheetGateway, st *store.Store) *syncService {
	return &syncService{
		gateway: gw,
		store:   st,
		logger:  testLogger(),
		now:     fixedNow,
	}
}

func TestLoadAllUnconfiguredServesSample(t *testing.T) {
	st := store.NewStore()
	svc := newTestSync(&fakeGateway{configured: false}, st)

	result, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, response.SourceSample, result.Source)
	assert.Equal(t, "Silakan setup Google Sheets terlebih dahulu!", result.Notice)
	assert.Equal(t, response.SyncCounts{Kas: 5, Iuran: 8, Ronda: 3, Info: 4}, result.Counts)
}

func TestLoadAllUnconfiguredSeedsOnlyOnce(t *testing.T) {
	st := store.NewStore()
	svc := newTestSync(&fakeGateway{configured: false}, st)

	_, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	// local edits must survive a repeated load
	st.InsertKas(models.KasEntry{
		Tanggal:    "2024-02-20",
		Tipe:       models.TipeMasuk,
		Keterangan: "Donasi warga",
		Jumlah:     50000,
	})

	result, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, result.Counts.Kas)
}

func TestLoadAllConfiguredReplacesDataset(t *testing.T) {
	st := store.NewStore()
	remote := store.SampleDataset(testTime)
	remote.Info = remote.Info[:1]
	svc := newTestSync(&fakeGateway{configured: true, dataset: &remote}, st)

	result, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, response.SourceSheet, result.Source)
	assert.Empty(t, result.Notice)
	assert.Equal(t, 1, result.Counts.Info)
	assert.Len(t, st.Snapshot().Info, 1)
}

func TestLoadAllInitialFetchFailureFallsBackToSample(t *testing.T) {
	st := store.NewStore()
	svc := newTestSync(&fakeGateway{configured: true, fetchErr: gateway.ErrUnavailable}, st)

	result, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, response.SourceSample, result.Source)
	assert.Equal(t, "Gagal memuat data dari Google Sheets, menampilkan data contoh.", result.Notice)
	assert.Equal(t, 5, result.Counts.Kas)
}

func TestLoadAllFetchFailureAfterLoadKeepsState(t *testing.T) {
	st := store.NewStore()
	remote := store.SampleDataset(testTime)
	gw := &fakeGateway{configured: true, dataset: &remote}
	svc := newTestSync(gw, st)

	_, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	gw.fetchErr = gateway.ErrUnavailable
	_, err = svc.LoadAll(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnavailable)

	// last good state survives the failed refresh
	assert.Len(t, st.Snapshot().Kas, 5)
}
