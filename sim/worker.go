package sim

import "github.com/sirupsen/logrus"

// Worker is a single-task-at-a-time executor. On dispatch it calls the shared
// RateLimitedClient; a grant makes the worker busy for the task's service
// duration, exhaustion fails the task on the spot at zero cost and leaves the
// worker idle for immediate redispatch.
type Worker struct {
	id           int
	client       *RateLimitedClient
	current      *Task
	completionAt int64
}

// NewWorker creates an idle worker bound to the shared client.
func NewWorker(id int, client *RateLimitedClient) *Worker {
	return &Worker{id: id, client: client}
}

// ID returns the worker's identifier.
func (w *Worker) ID() int {
	return w.id
}

// IsIdle reports whether the worker holds no task.
func (w *Worker) IsIdle() bool {
	return w.current == nil
}

// Current returns the in-flight task, nil when idle.
func (w *Worker) Current() *Task {
	return w.current
}

// StartService attempts to begin serving the task at tick now. Must only be
// called while the worker is idle. Returns true when the resource call was
// granted and the worker became busy. On exhaustion the task is marked failed
// with ServiceStart == ServiceEnd == now (the failure is a rejection of the
// resource call, not a partially completed task) and the worker stays idle.
func (w *Worker) StartService(t *Task, now int64) bool {
	if w.current != nil {
		panic("StartService called on busy worker")
	}

	endpointID, granted := w.client.Acquire(now)
	if !granted {
		t.ServiceStart = now
		t.ServiceEnd = now
		t.State = StateFailed
		logrus.Debugf("[tick %07d] worker %d: task %s failed, endpoints exhausted", now, w.id, t.ID)
		return false
	}

	t.ServiceStart = now
	t.EndpointID = endpointID
	t.State = StateInService
	w.current = t
	w.completionAt = now + t.ServiceDuration
	logrus.Debugf("[tick %07d] worker %d serving task %s via endpoint %d until %d",
		now, w.id, t.ID, endpointID, w.completionAt)
	return true
}

// CompletionTime returns the tick at which the current task finishes.
// Only meaningful while the worker is busy.
func (w *Worker) CompletionTime() int64 {
	return w.completionAt
}

// Complete marks the current task completed at tick now and frees the worker.
func (w *Worker) Complete(now int64) *Task {
	if w.current == nil {
		panic("Complete called on idle worker")
	}
	t := w.current
	t.ServiceEnd = now
	t.State = StateCompleted
	w.current = nil
	return t
}
