package ui

// Package ui contains the Fyne-based user interface for the application.
// ComicScreen implements the viewer's View and Notifier on top of Fyne
// widgets and wires input, menus, gestures and settings to the controller.
// All UI strings are localized via Localization.
