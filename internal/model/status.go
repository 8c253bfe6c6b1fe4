package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRunning means the plan is executing against the engine
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusSucceeded means the task finished successfully
	TaskStatusSucceeded TaskStatus = "Succeeded"

	// TaskStatusFailed means the task failed; no retry is attempted
	TaskStatusFailed TaskStatus = "Failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusRunning
}

// IsFinished returns true if the task reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusSucceeded || ts == TaskStatusFailed
}
