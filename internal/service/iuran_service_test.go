package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalIuranService(st *store.Store) IuranService {
	gw := &fakeGateway{configured: false}
	syncSvc := NewSyncService(gw, st, testLogger())
	return NewIuranService(st, gw, syncSvc, testLogger())
}

func TestIuranListSortedByRumah(t *testing.T) {
	st := store.NewStore()
	st.Replace(models.Dataset{Iuran: []models.IuranRecord{
		{ID: 1, Rumah: "B-02", Nama: "Hendra", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusLunas},
		{ID: 2, Rumah: "A-05", Nama: "Eko", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusBelum},
		{ID: 3, Rumah: "A-01", Nama: "Budi", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusLunas},
	}})

	resp := newLocalIuranService(st).List("", "", false)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, "A-01", resp.Items[0].Rumah)
	assert.Equal(t, "A-05", resp.Items[1].Rumah)
	assert.Equal(t, "B-02", resp.Items[2].Rumah)
}

func TestIuranListCombinedFilter(t *testing.T) {
	st := testStore()
	st.InsertIuran(models.IuranRecord{Rumah: "A-01", Nama: "Budi Santoso", Bulan: "2024-02", Jumlah: 50000, Status: models.StatusBelum})

	resp := newLocalIuranService(st).List("2024-01", "a-0", false)

	require.NotEmpty(t, resp.Items)
	for _, item := range resp.Items {
		assert.Equal(t, "2024-01", item.Bulan)
		matched := strings.Contains(strings.ToLower(item.Rumah), "a-0") ||
			strings.Contains(strings.ToLower(item.Nama), "a-0")
		assert.True(t, matched)
	}
	assert.Len(t, resp.Items, 5, "exactly the A-0x houses billed in 2024-01")
}

func TestIuranListSearchMatchesNama(t *testing.T) {
	svc := newLocalIuranService(testStore())

	resp := svc.List("", "santoso", false)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Budi Santoso", resp.Items[0].Nama)
}

func TestIuranListSearchIsCaseInsensitive(t *testing.T) {
	svc := newLocalIuranService(testStore())

	lower := svc.List("", "b-0", false)
	upper := svc.List("", "B-0", false)

	assert.Equal(t, len(lower.Items), len(upper.Items))
	assert.Len(t, lower.Items, 3)
}

func TestIuranListEmptyState(t *testing.T) {
	svc := newLocalIuranService(testStore())

	resp := svc.List("2030-01", "", false)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "Tidak ada data iuran", resp.Empty)
}

func TestIuranListIdempotent(t *testing.T) {
	svc := newLocalIuranService(testStore())

	first, err := json.Marshal(svc.List("2024-01", "a", true))
	require.NoError(t, err)
	second, err := json.Marshal(svc.List("2024-01", "a", true))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestIuranSaveLocalCreateAllowsDuplicatePair(t *testing.T) {
	st := testStore()
	svc := newLocalIuranService(st)

	// the sheet enforces no (rumah, bulan) uniqueness, neither do we
	result, err := svc.Save(context.Background(), models.IuranRecord{
		Rumah: "A-01", Nama: "Budi Santoso", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusBelum,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), result.ID)
	assert.Len(t, st.Snapshot().Iuran, 9)
}

func TestIuranSaveLocalUpdateStatus(t *testing.T) {
	st := testStore()
	svc := newLocalIuranService(st)

	record, err := svc.Get(3)
	require.NoError(t, err)
	record.Status = models.StatusLunas

	result, err := svc.Save(context.Background(), *record)
	require.NoError(t, err)
	assert.Equal(t, "Data iuran berhasil diupdate!", result.Message)

	updated, err := svc.Get(3)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLunas, updated.Status)
}

func TestIuranSaveRejectsInvalid(t *testing.T) {
	st := testStore()
	svc := newLocalIuranService(st)

	before := st.Snapshot()

	_, err := svc.Save(context.Background(), models.IuranRecord{
		Rumah: "A-01", Nama: "Budi", Bulan: "2024-01", Jumlah: 50000, Status: "dicicil",
	})
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, before, st.Snapshot())
}

func TestIuranDeleteLocal(t *testing.T) {
	st := testStore()
	svc := newLocalIuranService(st)

	result, err := svc.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Data iuran berhasil dihapus!", result.Message)
	assert.Len(t, st.Snapshot().Iuran, 7)
}
