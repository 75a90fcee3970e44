package ui

import (
	"sync"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
)

// Settings are the editor settings applied once at startup, before the
// context graph is built.
type Settings struct {
	// AllowCursorLock permits widgets to grab the mouse cursor.
	AllowCursorLock bool

	// CheckUpdates enables the automatic update check.
	CheckUpdates bool

	// ShowTips shows the tips banner when the window is shown.
	ShowTips bool

	// CableColors is the palette used for new patch cables.
	CableColors []string
}

var (
	settingsMu sync.RWMutex
	settings   Settings
)

// Apply installs the editor settings for this run.
func Apply(s Settings) {
	settingsMu.Lock()
	settings = s
	settingsMu.Unlock()

	logger.Debug("UI settings applied",
		"cursor_lock", s.AllowCursorLock,
		"check_updates", s.CheckUpdates,
		"show_tips", s.ShowTips,
		"cable_colors", len(s.CableColors))
}

// CurrentSettings returns the settings installed by Apply.
func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// CableColor returns the palette color for the i-th cable, cycling
// through the palette. Empty palette yields "".
func CableColor(i int) string {
	settingsMu.RLock()
	defer settingsMu.RUnlock()

	if len(settings.CableColors) == 0 {
		return ""
	}
	return settings.CableColors[i%len(settings.CableColors)]
}
