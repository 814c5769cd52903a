package sim

import (
	"testing"
)

func TestWorker_StartService_Granted_BecomesBusy(t *testing.T) {
	// GIVEN an idle worker with an available endpoint
	w := NewWorker(0, NewRateLimitedClient(UniformRPMLimits(1, 60)))
	task := &Task{ID: "A", ServiceDuration: 5}

	// WHEN service starts at tick 10
	started := w.StartService(task, 10)

	// THEN the worker is busy until 15 and the task records its grant
	if !started {
		t.Fatal("StartService: got failed, want started")
	}
	if w.IsIdle() {
		t.Error("worker should be busy after a granted start")
	}
	if w.CompletionTime() != 15 {
		t.Errorf("CompletionTime: got %d, want 15", w.CompletionTime())
	}
	if task.State != StateInService || task.ServiceStart != 10 || task.EndpointID != 1 {
		t.Errorf("task after start: state=%s start=%d endpoint=%d, want in-service/10/1",
			task.State, task.ServiceStart, task.EndpointID)
	}
}

func TestWorker_StartService_Exhausted_ZeroCostFailure(t *testing.T) {
	// GIVEN a worker whose only endpoint is saturated
	client := NewRateLimitedClient(UniformRPMLimits(1, 1))
	client.Acquire(0)
	w := NewWorker(0, client)
	task := &Task{ID: "A", ServiceDuration: 5}

	// WHEN service is attempted at tick 10 (same window)
	started := w.StartService(task, 10)

	// THEN the task fails immediately, consuming no service time,
	// and the worker stays idle for immediate redispatch
	if started {
		t.Fatal("StartService: got started, want failed")
	}
	if !w.IsIdle() {
		t.Error("worker should remain idle after an exhausted start")
	}
	if task.State != StateFailed {
		t.Errorf("task state: got %s, want %s", task.State, StateFailed)
	}
	if task.ServiceStart != 10 || task.ServiceEnd != 10 {
		t.Errorf("failed task times: start=%d end=%d, want 10/10", task.ServiceStart, task.ServiceEnd)
	}
	if task.EndpointID != 0 {
		t.Errorf("failed task endpoint: got %d, want 0", task.EndpointID)
	}
}

func TestWorker_Complete_MarksTaskAndFrees(t *testing.T) {
	// GIVEN a busy worker
	w := NewWorker(0, NewRateLimitedClient(UniformRPMLimits(1, 60)))
	task := &Task{ID: "A", ServiceDuration: 5}
	w.StartService(task, 0)

	// WHEN the completion fires at tick 5
	got := w.Complete(5)

	// THEN the task is terminal and the worker is idle again
	if got != task {
		t.Fatalf("Complete returned %v, want task A", got)
	}
	if task.State != StateCompleted || task.ServiceEnd != 5 {
		t.Errorf("completed task: state=%s end=%d, want completed/5", task.State, task.ServiceEnd)
	}
	if !w.IsIdle() {
		t.Error("worker should be idle after completion")
	}
}

func TestWorker_ZeroDuration_CompletesAtStartTick(t *testing.T) {
	// GIVEN an idle worker and a zero-duration task
	w := NewWorker(0, NewRateLimitedClient(UniformRPMLimits(1, 60)))
	task := &Task{ID: "A", ServiceDuration: 0}

	// WHEN service starts at tick 7
	w.StartService(task, 7)

	// THEN the completion time equals the start tick
	if w.CompletionTime() != 7 {
		t.Errorf("CompletionTime: got %d, want 7", w.CompletionTime())
	}
}
