package response

// LoginResult carries the admin token issued after a successful login
type LoginResult struct {
	Token     string `json:"token"`
	Role      string `json:"role" example:"Admin"`
	ExpiresAt string `json:"expires_at" example:"2024-02-20T08:00:00Z"`
}

// SessionResponse reports the current session view state
type SessionResponse struct {
	Theme       string `json:"theme" example:"dark"`
	CurrentPage string `json:"current_page" example:"pageDashboard"`
	WeekOffset  int    `json:"week_offset" example:"0"`
}
