package models

import "time"

// Theme values persisted across sessions
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// PreferenceKeyTheme is the key under which the display theme is stored
const PreferenceKeyTheme = "theme"

// Preference represents the preferences table: durable key-value client
// state. Theme is currently the only key with an external lifecycle.
type Preference struct {
	Key       string    `json:"key" gorm:"primarykey;column:key"`
	Value     string    `json:"value" gorm:"column:value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Preference
func (Preference) TableName() string {
	return "preferences"
}

// ValidTheme reports whether a theme value is one of the known themes
func ValidTheme(theme string) bool {
	return theme == ThemeDark || theme == ThemeLight
}
