// Implements the AdmissionQueue, which holds tasks that have arrived but not
// yet been picked up by a worker. Admission control is reject-on-overflow:
// enqueue never blocks, a full queue turns the task away immediately.

package sim

import (
	"fmt"
	"strings"
)

// UnboundedCapacity disables the queue length limit.
const UnboundedCapacity = -1

// AdmissionQueue is a bounded FIFO of tasks waiting for a worker.
// Both operations are synchronous and return immediately; backpressure is
// expressed purely through the rejected enqueue result.
type AdmissionQueue struct {
	queue    []*Task
	capacity int // UnboundedCapacity means no limit
}

// NewAdmissionQueue creates a queue with the given capacity.
// Capacity 0 is legal: every enqueue is rejected and arrivals can only be
// served through the idle-worker fast path.
func NewAdmissionQueue(capacity int) *AdmissionQueue {
	return &AdmissionQueue{
		queue:    make([]*Task, 0),
		capacity: capacity,
	}
}

// TryEnqueue appends the task to the tail and returns true, or returns false
// without mutating the queue when the queue is at capacity.
func (q *AdmissionQueue) TryEnqueue(t *Task) bool {
	if q.capacity != UnboundedCapacity && len(q.queue) >= q.capacity {
		return false
	}
	q.queue = append(q.queue, t)
	return true
}

// Dequeue removes and returns the head (strict arrival order).
// Returns nil if the queue is empty.
func (q *AdmissionQueue) Dequeue() *Task {
	if len(q.queue) == 0 {
		return nil
	}
	head := q.queue[0]
	q.queue = q.queue[1:]
	return head
}

// Peek returns the head without removing it. Returns nil if the queue is empty.
func (q *AdmissionQueue) Peek() *Task {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of tasks in the queue.
func (q *AdmissionQueue) Len() int {
	return len(q.queue)
}

// Capacity returns the configured capacity, UnboundedCapacity if unlimited.
func (q *AdmissionQueue) Capacity() int {
	return q.capacity
}

func (q *AdmissionQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range q.queue {
		sb.WriteString(fmt.Sprint(t))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
