package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "ws-tester.png"
)

// LoadLogoResource loads the window icon from file path. The icon is
// optional; callers fall back to the toolkit default on error.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
