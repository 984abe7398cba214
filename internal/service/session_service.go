package service

import (
	"fmt"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/repository"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/logger"
)

// SessionService interface defines view-session commands: theme, active
// page, and the ronda week offset. Theme is the only durable field; it is
// written through the preference repository on every change.
type SessionService interface {
	State() *response.SessionResponse
	SetTheme(theme string) (*response.SessionResponse, error)
	ToggleTheme() (*response.SessionResponse, error)
	SetPage(page string) (*response.SessionResponse, error)
	ShiftWeek(delta int) int
	ResetWeek() int
	WeekOffset() int
}

// sessionService implements SessionService interface
type sessionService struct {
	session *store.Session
	prefs   repository.PreferenceRepository
	logger  *logger.Logger
}

// NewSessionService creates a new session service
func NewSessionService(session *store.Session, prefs repository.PreferenceRepository, log *logger.Logger) SessionService {
	return &sessionService{
		session: session,
		prefs:   prefs,
		logger:  log,
	}
}

// State reports the current session view state
func (s *sessionService) State() *response.SessionResponse {
	return &response.SessionResponse{
		Theme:       s.session.Theme(),
		CurrentPage: s.session.CurrentPage(),
		WeekOffset:  s.session.WeekOffset(),
	}
}

// SetTheme validates, persists, and applies a theme value
func (s *sessionService) SetTheme(theme string) (*response.SessionResponse, error) {
	if !models.ValidTheme(theme) {
		return nil, fmt.Errorf("invalid theme %q", theme)
	}

	if err := s.prefs.Set(models.PreferenceKeyTheme, theme); err != nil {
		s.logger.WithError(err).Error("Failed to persist theme preference")
		return nil, err
	}
	s.session.SetTheme(theme)

	s.logger.WithField("theme", theme).Info("Theme updated")

	return s.State(), nil
}

// ToggleTheme flips between dark and light
func (s *sessionService) ToggleTheme() (*response.SessionResponse, error) {
	next := models.ThemeLight
	if s.session.Theme() == models.ThemeLight {
		next = models.ThemeDark
	}
	return s.SetTheme(next)
}

// SetPage records the active page
func (s *sessionService) SetPage(page string) (*response.SessionResponse, error) {
	if !store.ValidPage(page) {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	s.session.SetCurrentPage(page)
	return s.State(), nil
}

// ShiftWeek adjusts the ronda week offset and returns the new value
func (s *sessionService) ShiftWeek(delta int) int {
	return s.session.ShiftWeek(delta)
}

// ResetWeek returns the schedule to the current week
func (s *sessionService) ResetWeek() int {
	s.session.ResetWeek()
	return s.session.WeekOffset()
}

// WeekOffset returns the current ronda week offset
func (s *sessionService) WeekOffset() int {
	return s.session.WeekOffset()
}
