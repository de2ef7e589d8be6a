package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/xkcd-viewer/internal/config"
	"github.com/ytget/xkcd-viewer/internal/fetch"
	"github.com/ytget/xkcd-viewer/internal/store"
	"github.com/ytget/xkcd-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.xkcd-viewer"
	AppName = "xkcd Viewer"

	WindowWidth  = 640
	WindowHeight = 720
)

func main() {
	// Log version information
	fmt.Printf("xkcd Viewer v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewComicTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	slot, err := store.Open(settings.GetStorageBackend(), myApp)
	if err != nil {
		log.Printf("Failed to open %s storage, falling back to preferences: %v", settings.GetStorageBackend(), err)
		settings.SetStorageBackend(config.StoragePreferences)
		slot = store.NewPreferencesStore(myApp.Preferences())
	}

	fetchSvc := fetch.NewService(settings.GetEndpointURL(), settings.GetRequestTimeout())

	// Create and setup UI
	screen := ui.NewComicScreen(myWindow, myApp, settings, slot, fetchSvc)
	screen.SetVersion(version)

	// Show and run
	myWindow.ShowAndRun()
	screen.Close()
}
