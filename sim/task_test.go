package sim

import (
	"testing"
)

func TestTask_Terminal(t *testing.T) {
	// GIVEN tasks in every lifecycle state
	cases := map[TaskState]bool{
		StateArrived:   false,
		StateQueued:    false,
		StateInService: false,
		StateCompleted: true,
		StateRejected:  true,
		StateFailed:    true,
	}

	// WHEN Terminal() is checked
	// THEN only completed, rejected, and failed report terminal
	for state, want := range cases {
		task := &Task{ID: "t", State: state}
		if got := task.Terminal(); got != want {
			t.Errorf("Terminal() in state %s: got %v, want %v", state, got, want)
		}
	}
}

func TestTask_QueueingDelay(t *testing.T) {
	// GIVEN a task that waited from tick 3 to tick 10
	task := &Task{ID: "t", QueueEntryTime: 3, ServiceStart: 10}

	// WHEN the queueing delay is computed
	// THEN it is the elapsed virtual time between queue entry and service start
	if got := task.QueueingDelay(); got != 7 {
		t.Errorf("QueueingDelay: got %d, want 7", got)
	}
}
