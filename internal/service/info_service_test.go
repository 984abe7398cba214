package service

import (
	"context"
	"testing"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalInfoService(st *store.Store) InfoService {
	gw := &fakeGateway{configured: false}
	syncSvc := NewSyncService(gw, st, testLogger())
	return NewInfoService(st, gw, syncSvc, testLogger())
}

func TestInfoListPreservesCollectionOrder(t *testing.T) {
	svc := newLocalInfoService(testStore())

	resp := svc.List(false)

	require.Len(t, resp.Items, 4)
	assert.Equal(t, "Kerja Bakti Bulanan", resp.Items[0].Judul)
	assert.Equal(t, "Jadwal Pemadaman Listrik", resp.Items[3].Judul)
	assert.Equal(t, models.KategoriKeamanan, resp.Items[2].Kategori)
}

func TestInfoListRendersMarkdown(t *testing.T) {
	st := store.NewStore()
	st.Replace(models.Dataset{Info: []models.InfoItem{
		{ID: 1, Tanggal: "2024-02-15", Judul: "Rapat", Kategori: models.KategoriUmum, Isi: "Agenda **penting** bulan ini."},
	}})

	resp := newLocalInfoService(st).List(false)

	require.Len(t, resp.Items, 1)
	assert.Contains(t, resp.Items[0].IsiHTML, "<strong>penting</strong>")
	assert.Equal(t, "Agenda **penting** bulan ini.", resp.Items[0].Isi)
	assert.Equal(t, "15 Februari 2024", resp.Items[0].TanggalDisplay)
}

func TestInfoListEscapesRawHTML(t *testing.T) {
	st := store.NewStore()
	st.Replace(models.Dataset{Info: []models.InfoItem{
		{ID: 1, Tanggal: "2024-02-15", Judul: "Uji", Kategori: models.KategoriUmum, Isi: "<script>alert(1)</script>"},
	}})

	resp := newLocalInfoService(st).List(false)

	assert.NotContains(t, resp.Items[0].IsiHTML, "<script>")
}

func TestInfoListEmptyState(t *testing.T) {
	resp := newLocalInfoService(store.NewStore()).List(false)

	assert.Empty(t, resp.Items)
	assert.Equal(t, "Belum ada pengumuman", resp.Empty)
}

func TestInfoSaveLocalCreatePrepends(t *testing.T) {
	st := testStore()
	svc := newLocalInfoService(st)

	result, err := svc.Save(context.Background(), models.InfoItem{
		Tanggal: "2024-02-20", Judul: "Rapat RT", Kategori: models.KategoriUmum, Isi: "Rapat bulanan warga.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pengumuman berhasil ditambahkan!", result.Message)
	assert.Equal(t, int64(5), result.ID)

	// newest entry leads the collection so the dashboard picks it up
	resp := svc.List(false)
	assert.Equal(t, "Rapat RT", resp.Items[0].Judul)
}

func TestInfoSaveRejectsUnknownKategori(t *testing.T) {
	st := testStore()
	svc := newLocalInfoService(st)

	_, err := svc.Save(context.Background(), models.InfoItem{
		Tanggal: "2024-02-20", Judul: "Promo", Kategori: "promosi", Isi: "Diskon besar.",
	})
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, st.Snapshot().Info, 4)
}

func TestInfoDeleteLocal(t *testing.T) {
	st := testStore()
	svc := newLocalInfoService(st)

	_, err := svc.Delete(context.Background(), 2)
	require.NoError(t, err)

	resp := svc.List(false)
	require.Len(t, resp.Items, 3)
	for _, item := range resp.Items {
		assert.NotEqual(t, int64(2), item.ID)
	}
}
