package service

import (
	"context"
	"encoding/json"
	"testing"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRonda(st *store.Store) *rondaService {
	gw := &fakeGateway{configured: false}
	syncSvc := NewSyncService(gw, st, testLogger())
	svc := NewRondaService(st, gw, syncSvc, testLogger()).(*rondaService)
	svc.now = fixedNow
	return svc
}

func TestRondaScheduleCurrentWeek(t *testing.T) {
	svc := newTestRonda(testStore())

	resp := svc.Schedule(0, false)

	assert.Equal(t, 0, resp.WeekOffset)
	assert.Equal(t, "2024-02-19", resp.StartDate)
	assert.Equal(t, "2024-02-25", resp.EndDate)
	require.Len(t, resp.Days, 7)

	// sample shifts land on the first three days of the window
	assert.Len(t, resp.Days[0].Shifts, 1)
	assert.Len(t, resp.Days[1].Shifts, 1)
	assert.Len(t, resp.Days[2].Shifts, 1)
	for d := 3; d < 7; d++ {
		assert.Empty(t, resp.Days[d].Shifts)
	}

	assert.True(t, resp.Days[0].IsToday)
	assert.False(t, resp.Days[1].IsToday)
	assert.Equal(t, "Senin", resp.Days[0].DayName)
	assert.Equal(t, "Selasa", resp.Days[1].DayName)
}

func TestRondaScheduleNextWeekIsEmpty(t *testing.T) {
	svc := newTestRonda(testStore())

	resp := svc.Schedule(1, false)

	assert.Equal(t, "2024-02-26", resp.StartDate)
	assert.Equal(t, "2024-03-03", resp.EndDate)
	for _, day := range resp.Days {
		assert.Empty(t, day.Shifts)
		assert.False(t, day.IsToday)
	}
}

func TestRondaSchedulePreviousWeek(t *testing.T) {
	svc := newTestRonda(testStore())

	resp := svc.Schedule(-1, false)

	assert.Equal(t, "2024-02-12", resp.StartDate)
	assert.Equal(t, "2024-02-18", resp.EndDate)
}

func TestRondaScheduleAdminActions(t *testing.T) {
	svc := newTestRonda(testStore())

	guest := svc.Schedule(0, false)
	assert.Nil(t, guest.Days[0].Shifts[0].Actions)

	admin := svc.Schedule(0, true)
	require.NotNil(t, admin.Days[0].Shifts[0].Actions)
}

func TestRondaScheduleIdempotent(t *testing.T) {
	svc := newTestRonda(testStore())

	first, err := json.Marshal(svc.Schedule(0, true))
	require.NoError(t, err)
	second, err := json.Marshal(svc.Schedule(0, true))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRondaSaveLocalCreate(t *testing.T) {
	st := testStore()
	svc := newTestRonda(st)

	result, err := svc.Save(context.Background(), models.RondaShift{
		Tanggal: "2024-02-22", Petugas1: "Siti Rahayu", Petugas2: "Yuni Astuti", Jam: "22:00 - 05:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jadwal ronda berhasil ditambahkan!", result.Message)
	assert.Equal(t, int64(4), result.ID)

	resp := svc.Schedule(0, false)
	assert.Len(t, resp.Days[3].Shifts, 1)
}

func TestRondaSaveRequiresTwoGuards(t *testing.T) {
	st := testStore()
	svc := newTestRonda(st)

	_, err := svc.Save(context.Background(), models.RondaShift{
		Tanggal: "2024-02-22", Petugas1: "Siti Rahayu", Jam: "22:00 - 05:00",
	})
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "petugas2")
	assert.Len(t, st.Snapshot().Ronda, 3)
}

func TestRondaDeleteLocal(t *testing.T) {
	st := testStore()
	svc := newTestRonda(st)

	_, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)

	resp := svc.Schedule(0, false)
	assert.Empty(t, resp.Days[0].Shifts)
	assert.Len(t, st.Snapshot().Ronda, 2)
}
