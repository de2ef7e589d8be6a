package viewer

// Package viewer holds the screen logic independent of any widget toolkit:
// input validation, the presenter mapping a comic onto a View, and the
// controller that drives fetch, display, persistence and startup restore.
