package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "xkcd-viewer.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// LoadImageResource downloads the comic image at url
func LoadImageResource(url string) (fyne.Resource, error) {
	return fyne.LoadResourceFromURLString(url)
}
