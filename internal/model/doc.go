package model

// Package model defines domain data structures used across the app: the comic
// record, its canonical textual form, and the status enums that drive the
// screen and fetch tasks.
