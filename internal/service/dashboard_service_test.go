package service

import (
	"encoding/json"
	"testing"
	"time"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(st *store.Store) *dashboardService {
	svc := NewDashboardService(st, testLogger()).(*dashboardService)
	svc.now = fixedNow
	return svc
}

func TestDashboardSummarySampleData(t *testing.T) {
	svc := newTestDashboard(testStore())

	resp := svc.Summary(false)

	// 1.500.000 + 1.500.000 - 350.000 - 500.000 - 200.000
	assert.Equal(t, int64(1950000), resp.Saldo)
	assert.Equal(t, "Rp 1.950.000", resp.SaldoFormatted)

	// sample kas is dated 2024-01/2024-02, the fixed clock is 2024-02-19
	assert.Equal(t, int64(1500000), resp.PemasukanBulanIni)
	assert.Equal(t, int64(200000), resp.PengeluaranBulanIni)

	assert.Equal(t, 8, resp.TotalRumah)

	assert.Equal(t, "Selamat Pagi", resp.Greeting)
	assert.Equal(t, "Senin, 19 Februari 2024", resp.CurrentDate)
}

func TestDashboardLatestInfoTakesHead(t *testing.T) {
	svc := newTestDashboard(testStore())

	resp := svc.Summary(false)

	require.Len(t, resp.LatestInfo, 3)
	assert.Equal(t, "Kerja Bakti Bulanan", resp.LatestInfo[0].Judul)
	assert.Equal(t, "Pembayaran Iuran", resp.LatestInfo[1].Judul)
	assert.Equal(t, "Peningkatan Keamanan", resp.LatestInfo[2].Judul)
	assert.Empty(t, resp.LatestInfoEmpty)
}

func TestDashboardTodayRondaExpandsGuards(t *testing.T) {
	svc := newTestDashboard(testStore())

	resp := svc.Summary(false)

	// one shift today, two guards
	require.Len(t, resp.TodayRonda, 2)
	assert.Equal(t, "Budi Santoso", resp.TodayRonda[0].Nama)
	assert.Equal(t, "B", resp.TodayRonda[0].Initial)
	assert.Equal(t, "Ahmad Wijaya", resp.TodayRonda[1].Nama)
	assert.Equal(t, "22:00 - 05:00", resp.TodayRonda[1].Jam)
}

func TestDashboardOverdueList(t *testing.T) {
	svc := newTestDashboard(testStore())

	resp := svc.Summary(false)

	require.Len(t, resp.OverdueIuran, 3)
	assert.Equal(t, "A-03", resp.OverdueIuran[0].Rumah)
	assert.Equal(t, "A-05", resp.OverdueIuran[1].Rumah)
	assert.Equal(t, "B-03", resp.OverdueIuran[2].Rumah)
	assert.Empty(t, resp.OverdueEmpty)
}

func TestDashboardOverdueCap(t *testing.T) {
	st := store.NewStore()
	var iuran []models.IuranRecord
	for i := 1; i <= 8; i++ {
		iuran = append(iuran, models.IuranRecord{
			ID: int64(i), Rumah: "C-01", Nama: "Warga", Bulan: "2024-01",
			Jumlah: 50000, Status: models.StatusBelum,
		})
	}
	st.Replace(models.Dataset{Iuran: iuran})

	resp := newTestDashboard(st).Summary(false)
	assert.Len(t, resp.OverdueIuran, 5)
}

func TestDashboardEmptyDataset(t *testing.T) {
	svc := newTestDashboard(store.NewStore())

	resp := svc.Summary(false)

	assert.Equal(t, int64(0), resp.Saldo)
	assert.Equal(t, "Rp 0", resp.SaldoFormatted)
	assert.Zero(t, resp.TotalRumah)
	assert.Equal(t, "Belum ada pengumuman", resp.LatestInfoEmpty)
	assert.Equal(t, "Tidak ada jadwal ronda hari ini", resp.TodayRondaEmpty)
	assert.Equal(t, "Semua iuran sudah lunas!", resp.OverdueEmpty)
}

func TestDashboardIdempotent(t *testing.T) {
	svc := newTestDashboard(testStore())

	first, err := json.Marshal(svc.Summary(true))
	require.NoError(t, err)
	second, err := json.Marshal(svc.Summary(true))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestDashboardGreetingFollowsClock(t *testing.T) {
	svc := newTestDashboard(testStore())
	svc.now = func() time.Time {
		return time.Date(2024, 2, 19, 20, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, "Selamat Malam", svc.Summary(false).Greeting)
}
