package models_test

import (
	"testing"

	"emurai-be-svc/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKasEntryValidate(t *testing.T) {
	valid := models.KasEntry{
		Tanggal:    "2024-01-15",
		Tipe:       models.TipeMasuk,
		Keterangan: "Iuran Januari 2024",
		Jumlah:     1500000,
	}
	assert.NoError(t, valid.Validate())

	zeroAmount := valid
	zeroAmount.Jumlah = 0
	err := zeroAmount.Validate()
	require.Error(t, err)

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "jumlah")

	emptyDesc := valid
	emptyDesc.Keterangan = ""
	require.ErrorAs(t, emptyDesc.Validate(), &vErr)
	assert.Contains(t, vErr.Fields, "keterangan")

	badTipe := valid
	badTipe.Tipe = "transfer"
	require.ErrorAs(t, badTipe.Validate(), &vErr)
	assert.Contains(t, vErr.Fields, "tipe")

	badDate := valid
	badDate.Tanggal = "15/01/2024"
	require.ErrorAs(t, badDate.Validate(), &vErr)
	assert.Contains(t, vErr.Fields, "tanggal")
}

func TestIuranRecordValidate(t *testing.T) {
	valid := models.IuranRecord{
		Rumah:  "A-01",
		Nama:   "Budi Santoso",
		Bulan:  "2024-01",
		Jumlah: 50000,
		Status: models.StatusLunas,
	}
	assert.NoError(t, valid.Validate())

	var vErr *models.ValidationError

	badMonth := valid
	badMonth.Bulan = "Januari"
	require.ErrorAs(t, badMonth.Validate(), &vErr)
	assert.Contains(t, vErr.Fields, "bulan")

	badStatus := valid
	badStatus.Status = "nunggak"
	require.ErrorAs(t, badStatus.Validate(), &vErr)
	assert.Contains(t, vErr.Fields, "status")

	missing := models.IuranRecord{}
	require.ErrorAs(t, missing.Validate(), &vErr)
	assert.Len(t, vErr.Fields, 5)
}

func TestRondaShiftValidate(t *testing.T) {
	valid := models.RondaShift{
		Tanggal:  "2024-02-19",
		Petugas1: "Budi Santoso",
		Petugas2: "Ahmad Wijaya",
		Jam:      "22:00 - 05:00",
	}
	assert.NoError(t, valid.Validate())

	var vErr *models.ValidationError

	oneGuard := valid
	oneGuard.Petugas2 = ""
	require.ErrorAs(t, oneGuard.Validate(), &vErr)
	assert.Contains(t, vErr.Fields, "petugas2")
}

func TestInfoItemValidate(t *testing.T) {
	valid := models.InfoItem{
		Tanggal:  "2024-02-15",
		Judul:    "Kerja Bakti Bulanan",
		Kategori: models.KategoriAcara,
		Isi:      "Mengundang seluruh warga.",
	}
	assert.NoError(t, valid.Validate())

	var vErr *models.ValidationError

	badKategori := valid
	badKategori.Kategori = "promosi"
	require.ErrorAs(t, badKategori.Validate(), &vErr)
	assert.Contains(t, vErr.Fields, "kategori")
}

func TestValidationErrorMessage(t *testing.T) {
	entry := models.KasEntry{}
	err := entry.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tanggal")
	assert.Contains(t, err.Error(), "jumlah")
}

func TestDatasetClone(t *testing.T) {
	ds := models.Dataset{
		Kas: []models.KasEntry{{ID: 1, Keterangan: "asli"}},
	}
	clone := ds.Clone()
	clone.Kas[0].Keterangan = "diubah"

	assert.Equal(t, "asli", ds.Kas[0].Keterangan)
}
