package model

// TaskStatus represents the status of a fetch task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the request is not sent yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusFetching means the request is in flight
	TaskStatusFetching TaskStatus = "Fetching"

	// TaskStatusCompleted means the comic was fetched and decoded
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the fetch failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task has not resolved yet
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusFetching
}

// IsFinished returns true if the task resolved (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// ScreenState is the state of the comic screen controller
type ScreenState int

const (
	StateIdle ScreenState = iota
	StateAwaitingFetch
)

func (s ScreenState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingFetch:
		return "AwaitingFetch"
	default:
		return "Unknown"
	}
}
