package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateAdaptiveContainer creates a container that adapts to mobile orientation
func (m *MobileUI) CreateAdaptiveContainer(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(columns, objects...)
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	}

	return btn
}

// CreateNumberEntry creates an entry for comic numbers
func (m *MobileUI) CreateNumberEntry(placeholder string) *NumberEntry {
	entry := NewNumberEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

// NumberEntry is a single line entry that asks mobile platforms for a numeric keyboard
type NumberEntry struct {
	widget.Entry
}

// NewNumberEntry creates a new number entry
func NewNumberEntry() *NumberEntry {
	entry := &NumberEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// Keyboard implements mobile.Keyboardable
func (e *NumberEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
