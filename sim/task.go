// Defines the Task struct that models a single unit of work in the simulation.
// Tracks arrival, queue entry, service start/end, and the terminal outcome.

package sim

import (
	"fmt"
)

// TaskState represents the lifecycle state of a task.
type TaskState string

const (
	StateArrived   TaskState = "arrived"
	StateQueued    TaskState = "queued"
	StateInService TaskState = "in-service"
	StateCompleted TaskState = "completed"
	StateRejected  TaskState = "rejected"
	StateFailed    TaskState = "failed"
)

// Task models a single request's lifecycle in the simulation.
// All times are in ticks of virtual time. A task reaches exactly one of the
// terminal states:
//   - completed: served by a worker through a rate-limited endpoint
//   - rejected: admission queue was full at arrival
//   - failed: every endpoint was rate-limit saturated at dispatch time
//
// Once terminal, a task is never mutated again.
type Task struct {
	ID string // Unique identifier for the task

	ArrivalTime     int64 // Tick at which the task enters the system
	ServiceDuration int64 // Ticks of worker time the task needs

	QueueEntryTime int64 // Tick at which the task was offered to the queue (== ArrivalTime)
	ServiceStart   int64 // Tick at which a worker started (or failed) the task
	ServiceEnd     int64 // ServiceStart + ServiceDuration when completed; == ServiceStart when failed

	State TaskState

	// EndpointID records which endpoint served the task. Endpoints are
	// numbered from 1; zero means the task never reached a grant.
	EndpointID int
}

// Terminal reports whether the task has reached a terminal state.
func (t *Task) Terminal() bool {
	switch t.State {
	case StateCompleted, StateRejected, StateFailed:
		return true
	}
	return false
}

// QueueingDelay returns ServiceStart - QueueEntryTime. Only meaningful for
// tasks that went through dispatch (completed or failed); see ComputeReport.
func (t *Task) QueueingDelay() int64 {
	return t.ServiceStart - t.QueueEntryTime
}

// String returns a human-readable representation of a Task.
func (t Task) String() string {
	return fmt.Sprintf("Task: (ID: %s, State: %s, ArrivalTime: %d, ServiceDuration: %d)",
		t.ID, t.State, t.ArrivalTime, t.ServiceDuration)
}
