package service

import (
	"errors"
	"testing"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(prefs *fakePrefs) SessionService {
	return NewSessionService(store.NewSession(models.ThemeDark), prefs, testLogger())
}

func TestSessionInitialState(t *testing.T) {
	svc := newTestSession(newFakePrefs())

	state := svc.State()
	assert.Equal(t, models.ThemeDark, state.Theme)
	assert.Equal(t, store.PageDashboard, state.CurrentPage)
	assert.Zero(t, state.WeekOffset)
}

func TestSetThemePersists(t *testing.T) {
	prefs := newFakePrefs()
	svc := newTestSession(prefs)

	state, err := svc.SetTheme(models.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, state.Theme)
	assert.Equal(t, models.ThemeLight, prefs.values[models.PreferenceKeyTheme])
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	svc := newTestSession(newFakePrefs())

	_, err := svc.SetTheme("sepia")
	assert.Error(t, err)
	assert.Equal(t, models.ThemeDark, svc.State().Theme)
}

func TestToggleThemeTwiceRestoresOriginal(t *testing.T) {
	prefs := newFakePrefs()
	svc := newTestSession(prefs)

	state, err := svc.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, state.Theme)
	assert.Equal(t, models.ThemeLight, prefs.values[models.PreferenceKeyTheme])

	state, err = svc.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, state.Theme)
	assert.Equal(t, models.ThemeDark, prefs.values[models.PreferenceKeyTheme])
}

func TestSetThemeKeepsSessionOnPersistFailure(t *testing.T) {
	prefs := newFakePrefs()
	prefs.setErr = errors.New("disk full")
	svc := newTestSession(prefs)

	_, err := svc.SetTheme(models.ThemeLight)
	assert.Error(t, err)
	assert.Equal(t, models.ThemeDark, svc.State().Theme, "session theme unchanged when persistence fails")
}

func TestSetPage(t *testing.T) {
	svc := newTestSession(newFakePrefs())

	state, err := svc.SetPage(store.PageKas)
	require.NoError(t, err)
	assert.Equal(t, store.PageKas, state.CurrentPage)

	_, err = svc.SetPage("pageUnknown")
	assert.Error(t, err)
}

func TestShiftWeek(t *testing.T) {
	svc := newTestSession(newFakePrefs())

	assert.Equal(t, 1, svc.ShiftWeek(1))
	assert.Equal(t, 2, svc.ShiftWeek(1))
	assert.Equal(t, 1, svc.ShiftWeek(-1))
	assert.Equal(t, 1, svc.WeekOffset())
}

func TestResetWeekReturnsToCurrentWeek(t *testing.T) {
	svc := newTestSession(newFakePrefs())

	svc.ShiftWeek(3)
	assert.Zero(t, svc.ResetWeek())
	assert.Zero(t, svc.WeekOffset())
}
