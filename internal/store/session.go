package store

import "sync"

// Known page ids, matching the client navigation targets
const (
	PageDashboard = "pageDashboard"
	PageKas       = "pageKas"
	PageIuran     = "pageIuran"
	PageRonda     = "pageRonda"
	PageInfo      = "pageInfo"
)

// ValidPage reports whether a page id is a known navigation target
func ValidPage(page string) bool {
	switch page {
	case PageDashboard, PageKas, PageIuran, PageRonda, PageInfo:
		return true
	}
	return false
}

// Session holds the view session flags: active page, theme, and the ronda
// week offset. Theme durability is handled by the preference repository;
// everything else is recreated on each process start.
type Session struct {
	mu          sync.RWMutex
	theme       string
	currentPage string
	weekOffset  int
}

// NewSession creates a session starting on the dashboard with the given theme
func NewSession(theme string) *Session {
	return &Session{
		theme:       theme,
		currentPage: PageDashboard,
	}
}

// Theme returns the current theme
func (s *Session) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores the theme value
func (s *Session) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

// CurrentPage returns the active page id
func (s *Session) CurrentPage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// SetCurrentPage stores the active page id
func (s *Session) SetCurrentPage(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

// WeekOffset returns the ronda schedule offset in weeks from the current week
func (s *Session) WeekOffset() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weekOffset
}

// ShiftWeek adjusts the week offset by delta and returns the new value
func (s *Session) ShiftWeek(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekOffset += delta
	return s.weekOffset
}

// ResetWeek returns the schedule to the current week
func (s *Session) ResetWeek() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekOffset = 0
}
