package model

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences are the per-user UI flags the web client keeps: whether the
// sidebar is expanded and which theme is active.
type Preferences struct {
	SidebarExpanded bool   `json:"sidebar_expanded"`
	Theme           string `json:"theme"`
}

// DefaultPreferences returns the flags a user starts with.
func DefaultPreferences() Preferences {
	return Preferences{SidebarExpanded: true, Theme: ThemeLight}
}

// ValidTheme reports whether t is a known theme.
func ValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark
}
