package platform

// Package platform contains OS/platform integration: locating the app's
// private data directory and durable file writes used by the local stores.
