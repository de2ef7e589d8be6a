package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/xkcd-viewer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	backendSelect  *widget.Select
	policySelect   *widget.Select
	endpointEntry  *widget.Entry
	timeoutEntry   *NumberEntry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after settings are written
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(window, settings, localization, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	backendOptions := []string{}
	for _, backend := range sd.settings.GetStorageBackendOptions() {
		backendOptions = append(backendOptions, string(backend))
	}
	sd.backendSelect = widget.NewSelect(backendOptions, nil)

	policyOptions := []string{}
	for _, policy := range sd.settings.GetRestorePolicyOptions() {
		policyOptions = append(policyOptions, string(policy))
	}
	sd.policySelect = widget.NewSelect(policyOptions, nil)

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultEndpointURL)

	sd.timeoutEntry = NewNumberEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyStorageBackend)+":"),
		sd.backendSelect,

		widget.NewLabel(sd.localization.GetText(KeyRestorePolicy)+":"),
		sd.policySelect,

		widget.NewLabel(sd.localization.GetText(KeyEndpointURL)+":"),
		sd.endpointEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendSelect.SetSelected(string(sd.settings.GetStorageBackend()))
	sd.policySelect.SetSelected(string(sd.settings.GetRestorePolicy()))
	sd.endpointEntry.SetText(sd.settings.GetEndpointURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.backendSelect.Selected != "" {
		sd.settings.SetStorageBackend(config.StorageBackend(sd.backendSelect.Selected))
	}

	if sd.policySelect.Selected != "" {
		sd.settings.SetRestorePolicy(config.RestorePolicy(sd.policySelect.Selected))
	}

	sd.settings.SetEndpointURL(sd.endpointEntry.Text)

	if timeout := strings.TrimSpace(sd.timeoutEntry.Text); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil {
			sd.settings.SetRequestTimeoutSeconds(seconds)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
