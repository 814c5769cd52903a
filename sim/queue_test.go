package sim

import (
	"testing"
)

func TestAdmissionQueue_FIFO_Order(t *testing.T) {
	// GIVEN a queue with tasks [A, B, C]
	q := NewAdmissionQueue(UnboundedCapacity)
	taskA := &Task{ID: "A"}
	taskB := &Task{ID: "B"}
	taskC := &Task{ID: "C"}
	for _, task := range []*Task{taskA, taskB, taskC} {
		if !q.TryEnqueue(task) {
			t.Fatalf("TryEnqueue(%s) rejected on unbounded queue", task.ID)
		}
	}

	// WHEN all tasks are dequeued
	ids := make([]string, 0, 3)
	for q.Len() > 0 {
		ids = append(ids, q.Dequeue().ID)
	}

	// THEN strict arrival order is preserved
	want := []string{"A", "B", "C"}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("dequeue order[%d]: got %s, want %s", i, id, want[i])
		}
	}
}

func TestAdmissionQueue_RejectsWhenFull(t *testing.T) {
	// GIVEN a queue with capacity 2 holding 2 tasks
	q := NewAdmissionQueue(2)
	q.TryEnqueue(&Task{ID: "A"})
	q.TryEnqueue(&Task{ID: "B"})

	// WHEN a third enqueue is attempted
	accepted := q.TryEnqueue(&Task{ID: "C"})

	// THEN it is rejected without mutating the queue
	if accepted {
		t.Error("TryEnqueue on full queue: got accepted, want rejected")
	}
	if q.Len() != 2 {
		t.Errorf("queue length after rejection: got %d, want 2", q.Len())
	}
}

func TestAdmissionQueue_CapacityZero_RejectsEverything(t *testing.T) {
	// GIVEN a queue with capacity 0
	q := NewAdmissionQueue(0)

	// WHEN an enqueue is attempted
	accepted := q.TryEnqueue(&Task{ID: "A"})

	// THEN it is rejected immediately
	if accepted {
		t.Error("TryEnqueue on zero-capacity queue: got accepted, want rejected")
	}
	if q.Len() != 0 {
		t.Errorf("queue length: got %d, want 0", q.Len())
	}
}

func TestAdmissionQueue_LengthNeverExceedsCapacity(t *testing.T) {
	// GIVEN a queue with capacity 3
	q := NewAdmissionQueue(3)

	// WHEN 10 enqueues are attempted
	for i := 0; i < 10; i++ {
		q.TryEnqueue(&Task{ID: "t"})
		if q.Len() > q.Capacity() {
			t.Fatalf("queue length %d exceeds capacity %d", q.Len(), q.Capacity())
		}
	}

	// THEN the queue holds exactly its capacity
	if q.Len() != 3 {
		t.Errorf("queue length: got %d, want 3", q.Len())
	}
}

func TestAdmissionQueue_Dequeue_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	q := NewAdmissionQueue(UnboundedCapacity)

	// WHEN Dequeue() is called
	got := q.Dequeue()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}

func TestAdmissionQueue_Peek_DoesNotRemove(t *testing.T) {
	// GIVEN a queue with one task
	q := NewAdmissionQueue(UnboundedCapacity)
	taskA := &Task{ID: "A"}
	q.TryEnqueue(taskA)

	// WHEN Peek() is called
	got := q.Peek()

	// THEN it returns the head without removing it
	if got != taskA {
		t.Errorf("Peek: got %v, want task A", got)
	}
	if q.Len() != 1 {
		t.Errorf("Peek modified queue length: got %d, want 1", q.Len())
	}
}
