package store

// Package store persists the most recently viewed comic in a single slot.
// Three backings are available (Fyne preferences, a flat file in the app's
// private storage, and SQLite); they are interchangeable behind Store.
